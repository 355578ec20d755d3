package services

import (
	"context"
	stdsql "database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shipfleet/shipfleet/ent"
	"github.com/shipfleet/shipfleet/pkg/bus"
)

// newTestEnt opens an ent client against a real PostgreSQL: the CI service
// container when CI_DATABASE_URL is set, a throwaway testcontainer
// otherwise.
func newTestEnt(t *testing.T) *ent.Client {
	t.Helper()
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(ctx))

	t.Cleanup(func() { client.Close() })
	return client
}

func TestConfigService(t *testing.T) {
	client := newTestEnt(t)
	svc := NewConfigService(client)
	ctx := context.Background()

	t.Run("missing row yields enabled default", func(t *testing.T) {
		settings, err := svc.Get(ctx, 1, "security_compliance")
		require.NoError(t, err)
		assert.True(t, settings.Enabled)
		assert.Empty(t, settings.Config)
		assert.Nil(t, settings.LastRunAt)
	})

	t.Run("upsert creates then updates", func(t *testing.T) {
		disabled := false
		settings, err := svc.Upsert(ctx, 1, "review_coordination", &disabled,
			map[string]any{"sla_hours": 8})
		require.NoError(t, err)
		assert.False(t, settings.Enabled)
		assert.Equal(t, 8, settings.Int("sla_hours", 4))

		// nil enabled leaves the stored flag untouched
		settings, err = svc.Upsert(ctx, 1, "review_coordination", nil,
			map[string]any{"sla_hours": 2, "auto_merge": true})
		require.NoError(t, err)
		assert.False(t, settings.Enabled)
		assert.Equal(t, 2, settings.Int("sla_hours", 4))
		assert.True(t, settings.Bool("auto_merge"))
	})

	t.Run("list fills defaults for unconfigured agents", func(t *testing.T) {
		names := []string{"review_coordination", "chat_notifier"}
		settings, err := svc.List(ctx, 1, names)
		require.NoError(t, err)
		require.Len(t, settings, 2)
		assert.False(t, settings[0].Enabled)
		assert.True(t, settings[1].Enabled)
		assert.Equal(t, "chat_notifier", settings[1].Name)
	})

	t.Run("record run creates missing row and increments", func(t *testing.T) {
		require.NoError(t, svc.RecordRun(ctx, 2, "analytics_insights"))
		require.NoError(t, svc.RecordRun(ctx, 2, "analytics_insights"))

		settings, err := svc.Get(ctx, 2, "analytics_insights")
		require.NoError(t, err)
		assert.Equal(t, int64(2), settings.EventsProcessed)
		assert.NotNil(t, settings.LastRunAt)
	})

	t.Run("enabled projects", func(t *testing.T) {
		enabled := true
		_, err := svc.Upsert(ctx, 3, "analytics_insights", &enabled, nil)
		require.NoError(t, err)
		disabled := false
		_, err = svc.Upsert(ctx, 4, "analytics_insights", &disabled, nil)
		require.NoError(t, err)

		projects, err := svc.EnabledProjects(ctx, "analytics_insights")
		require.NoError(t, err)
		assert.Contains(t, projects, 3)
		assert.NotContains(t, projects, 4)
	})
}

func TestConfigService_WithDefaults(t *testing.T) {
	client := newTestEnt(t)
	svc := WithDefaults(NewConfigService(client), map[string]map[string]any{
		"review_coordination": {"sla_hours": 4, "auto_merge": true},
	})
	ctx := context.Background()

	settings, err := svc.Get(ctx, 1, "review_coordination")
	require.NoError(t, err)
	assert.Equal(t, 4, settings.Int("sla_hours", 0))
	assert.True(t, settings.Bool("auto_merge"))

	// a stored key wins over the file default
	_, err = svc.Upsert(ctx, 1, "review_coordination", nil, map[string]any{"sla_hours": 12})
	require.NoError(t, err)
	settings, err = svc.Get(ctx, 1, "review_coordination")
	require.NoError(t, err)
	assert.Equal(t, 12, settings.Int("sla_hours", 0))
	assert.True(t, settings.Bool("auto_merge"))

	// agents without defaults pass through untouched
	other, err := svc.Get(ctx, 1, "chat_notifier")
	require.NoError(t, err)
	assert.Empty(t, other.Config)
}

func TestConnectionService(t *testing.T) {
	client := newTestEnt(t)
	svc := NewConnectionService(client)
	ctx := context.Background()

	t.Run("lookup on empty store is nil nil", func(t *testing.T) {
		cred, err := svc.Lookup(ctx, 1, "gitlab")
		require.NoError(t, err)
		assert.Nil(t, cred)
	})

	t.Run("create requires a token", func(t *testing.T) {
		_, err := svc.Upsert(ctx, UpsertInput{Project: 1, Kind: "gitlab"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token is required")
	})

	t.Run("upsert trims and round-trips", func(t *testing.T) {
		conn, err := svc.Upsert(ctx, UpsertInput{
			Project: 1,
			Kind:    "gitlab",
			BaseURL: "  https://gitlab.example.com  ",
			Token:   "  glpat-abc  ",
			Config:  map[string]any{"external_project_id": " 42 "},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com", conn.BaseURL)
		assert.Equal(t, "glpat-abc", conn.Token)
		assert.Equal(t, "42", conn.Config["external_project_id"])

		cred, err := svc.Lookup(ctx, 1, "gitlab")
		require.NoError(t, err)
		require.NotNil(t, cred)
		assert.Equal(t, 42, cred.ConfigInt("external_project_id"))
		assert.True(t, cred.Enabled)
	})

	t.Run("empty token on update keeps the stored one", func(t *testing.T) {
		conn, err := svc.Upsert(ctx, UpsertInput{
			Project: 1,
			Kind:    "gitlab",
			BaseURL: "https://gitlab.internal",
			Token:   "",
		})
		require.NoError(t, err)
		assert.Equal(t, "glpat-abc", conn.Token)
		assert.Equal(t, "https://gitlab.internal", conn.BaseURL)
	})

	t.Run("first enabled serves project-less fallback", func(t *testing.T) {
		_, err := svc.Upsert(ctx, UpsertInput{Project: 0, Kind: "slack", Token: "xoxb-global"})
		require.NoError(t, err)

		cred, err := svc.FirstEnabled(ctx, "slack")
		require.NoError(t, err)
		require.NotNil(t, cred)
		assert.Equal(t, "xoxb-global", cred.Token)

		cred, err = svc.FirstEnabled(ctx, "figma")
		require.NoError(t, err)
		assert.Nil(t, cred)
	})

	t.Run("of kind lists only enabled credentials", func(t *testing.T) {
		disabled := false
		_, err := svc.Upsert(ctx, UpsertInput{
			Project: 2, Kind: "gitlab", Token: "glpat-off", Enabled: &disabled,
		})
		require.NoError(t, err)

		creds, err := svc.OfKind(ctx, "gitlab")
		require.NoError(t, err)
		require.Len(t, creds, 1)
		assert.Equal(t, 1, creds[0].Project)
	})

	t.Run("touch sync stamps and delete removes", func(t *testing.T) {
		conns, err := svc.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, conns, 1)
		assert.Nil(t, conns[0].LastSyncAt)

		require.NoError(t, svc.TouchSync(ctx, conns[0].ID))
		conn, err := svc.Get(ctx, conns[0].ID)
		require.NoError(t, err)
		assert.NotNil(t, conn.LastSyncAt)

		require.NoError(t, svc.Delete(ctx, conn.ID))
		cred, err := svc.Lookup(ctx, 1, "gitlab")
		require.NoError(t, err)
		assert.Nil(t, cred)
	})

	t.Run("projects lists distinct bound projects", func(t *testing.T) {
		_, err := svc.Upsert(ctx, UpsertInput{Project: 5, Kind: "figma", Token: "figd-x"})
		require.NoError(t, err)
		_, err = svc.Upsert(ctx, UpsertInput{Project: 5, Kind: "sentry", Token: "sn-x"})
		require.NoError(t, err)

		projects, err := svc.Projects(ctx)
		require.NoError(t, err)
		assert.Contains(t, projects, 5)
		assert.NotContains(t, projects, 0)
	})
}

func TestAuditService(t *testing.T) {
	client := newTestEnt(t)
	svc := NewAuditService(client, slog.Default())
	ctx := context.Background()

	evt := bus.NewEvent(bus.KindPROpened, "vcs_webhook", bus.Payload{"mr_iid": 87})
	evt.Project = 1

	t.Run("record and read back", func(t *testing.T) {
		require.NoError(t, svc.RecordProcessed(ctx, evt))

		records, err := svc.Recent(ctx, 1, "", 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, evt.ID, records[0].EventID)
		assert.Equal(t, "pr_opened", records[0].Kind)
		assert.Equal(t, "processed", records[0].Status)
		assert.EqualValues(t, 87, records[0].Data["mr_iid"])
	})

	t.Run("record error flips the row", func(t *testing.T) {
		svc.RecordError(ctx, evt.ID, "security_compliance", "diff fetch failed", 12.5)

		records, err := svc.Recent(ctx, 1, "pr_opened", 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "error", records[0].Status)
		assert.Equal(t, "security_compliance: diff fetch failed", records[0].ErrorMessage)
		assert.Equal(t, 12.5, records[0].ProcessingMS)
	})

	t.Run("filters and ordering", func(t *testing.T) {
		older := bus.NewEvent(bus.KindTicketCreated, "tracker_webhook", nil)
		older.Project = 1
		older.Timestamp = time.Now().Add(-time.Hour)
		require.NoError(t, svc.RecordProcessed(ctx, older))

		records, err := svc.Recent(ctx, 1, "", 10)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, evt.ID, records[0].EventID, "newest first")

		records, err = svc.Recent(ctx, 1, "ticket_created", 10)
		require.NoError(t, err)
		require.Len(t, records, 1)

		records, err = svc.Recent(ctx, 99, "", 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("attach records every published event", func(t *testing.T) {
		b := bus.New(bus.Options{})
		svc.Attach(b)
		b.Start(ctx)
		defer b.Stop()

		published := bus.NewEvent(bus.KindDeployComplete, "deployment_orchestrator", nil)
		published.Project = 8
		require.NoError(t, b.Publish(published))

		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			records, err := svc.Recent(ctx, 8, "", 10)
			require.NoError(t, err)
			if len(records) == 1 {
				return
			}
			time.Sleep(20 * time.Millisecond)
		}
		t.Fatal("published event never reached the audit trail")
	})

	t.Run("purge removes only rows past retention", func(t *testing.T) {
		ancient := bus.NewEvent(bus.KindMetricsCollected, "scheduler", nil)
		ancient.Project = 1
		ancient.Timestamp = time.Now().Add(-40 * 24 * time.Hour)
		require.NoError(t, svc.RecordProcessed(ctx, ancient))

		deleted, err := svc.PurgeOlderThan(ctx, 30*24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		records, err := svc.Recent(ctx, 1, "metrics_collected", 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
