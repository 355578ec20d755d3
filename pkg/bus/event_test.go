package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	e := NewEvent(KindTicketCreated, "tracker_webhook", Payload{"key": "SHIP-1"})

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, KindTicketCreated, e.Kind)
	assert.Equal(t, "tracker_webhook", e.Source)
	assert.Zero(t, e.Project)
	assert.Empty(t, e.CorrelationID)
	assert.False(t, e.Timestamp.IsZero())
}

func TestDerive_CorrelationPropagation(t *testing.T) {
	t.Run("root event seeds the chain with its own id", func(t *testing.T) {
		root := NewEvent(KindTicketCreated, "tracker_webhook", nil)
		root.Project = 7

		child := root.Derive(KindRequirementsAnalyzed, "product_intelligence", Payload{"ticket_key": "SHIP-1"})

		assert.Equal(t, root.ID, child.CorrelationID)
		assert.Equal(t, 7, child.Project)
		assert.NotEqual(t, root.ID, child.ID)
	})

	t.Run("existing correlation id is carried unchanged", func(t *testing.T) {
		root := NewEvent(KindTicketCreated, "tracker_webhook", nil)
		child := root.Derive(KindRequirementsAnalyzed, "product_intelligence", nil)
		grandchild := child.Derive(KindChatNotification, "product_intelligence", nil)

		assert.Equal(t, root.ID, grandchild.CorrelationID)
	})
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("security_scan_complete")
	require.NoError(t, err)
	assert.Equal(t, KindSecurityScanComplete, k)

	_, err = ParseKind("not_a_kind")
	assert.Error(t, err)
}

func TestAllKinds_Closed(t *testing.T) {
	kinds := AllKinds()
	assert.Len(t, kinds, 41)
	for _, k := range kinds {
		assert.True(t, k.Valid(), "kind %q", k)
	}
}

func TestPayload_Accessors(t *testing.T) {
	p := Payload{
		"name":    "deploy",
		"iid":     float64(42), // JSON numbers decode as float64
		"count":   7,
		"passed":  true,
		"files":   []any{"a.go", "b.go", 3},
		"typed":   []string{"x"},
		"nested":  map[string]any{"inner": "v"},
		"wrongly": 12,
	}

	assert.Equal(t, "deploy", p.String("name"))
	assert.Empty(t, p.String("wrongly"))
	assert.Equal(t, 42, p.Int("iid"))
	assert.Equal(t, 7, p.Int("count"))
	assert.Zero(t, p.Int("name"))
	assert.True(t, p.Bool("passed"))
	assert.False(t, p.Bool("missing"))
	assert.Equal(t, []string{"a.go", "b.go"}, p.Strings("files"))
	assert.Equal(t, []string{"x"}, p.Strings("typed"))
	assert.Equal(t, "v", p.Map("nested").String("inner"))
	assert.Nil(t, p.Map("name"))
}

func TestPayload_Decode(t *testing.T) {
	p := Payload{"mr_iid": float64(87), "diff": "x", "files": []any{"a.go"}}

	var out struct {
		MRIID int      `json:"mr_iid"`
		Diff  string   `json:"diff"`
		Files []string `json:"files"`
	}
	require.NoError(t, p.Decode(&out))
	assert.Equal(t, 87, out.MRIID)
	assert.Equal(t, "x", out.Diff)
	assert.Equal(t, []string{"a.go"}, out.Files)
}

func TestEventCopy_IsolatesPayload(t *testing.T) {
	e := NewEvent(KindPROpened, "test", Payload{"mr_iid": 1})
	dup := e.copy()
	dup.Payload["mr_iid"] = 999

	assert.Equal(t, 1, e.Payload.Int("mr_iid"))
}
