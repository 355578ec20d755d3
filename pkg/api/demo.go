package api

import "github.com/shipfleet/shipfleet/pkg/bus"

// vulnerableSampleDiff gives the security and test agents something worth
// flagging when an operator triggers them without real data.
const vulnerableSampleDiff = `--- a/app/db.py
+++ b/app/db.py
@@ -10,4 +10,8 @@
 def get_user(user_id):
-    return query("SELECT * FROM users WHERE id = ?", user_id)
+    sql = "SELECT * FROM users WHERE id = " + user_id
+    return query(sql)
+
+DB_PASSWORD = "hunter2-prod"
`

// demoDefaults holds the synthetic payload each agent gets from the manual
// trigger endpoint. Caller-provided event_data is merged over these, and
// they exist only here: no agent carries demo data.
var demoDefaults = map[string]bus.Payload{
	"product_intelligence": {
		"key":         "SHIP-142",
		"title":       "Implement real-time WebSocket notifications for task updates",
		"description": "Users should see task status changes without refreshing. Add a WebSocket channel that pushes task update events to connected clients.",
		"priority":    "High",
	},
	"design_sync": {
		"file_key":  "figma-abc123xyz",
		"file_name": "ShipFleet Dashboard Redesign",
	},
	"code_orchestration": {
		"issue_id": 142,
		"title":    "Implement real-time WebSocket notifications for task updates",
	},
	"security_compliance": {
		"mr_iid": 87,
		"diff":   vulnerableSampleDiff,
		"files":  []string{"app/db.py"},
	},
	"test_intelligence": {
		"mr_iid": 87,
		"diff":   vulnerableSampleDiff,
		"files":  []string{"app/db.py"},
	},
	"review_coordination": {
		"mr_iid": 87,
		"diff":   "--- a/README.md\n+++ b/README.md\n@@ -1 +1,2 @@\n # ShipFleet\n+Autonomous delivery agents.\n",
		"files":  []string{"README.md"},
	},
	"deployment_orchestrator": {
		"ref": "main",
		"commit_messages": []string{
			"Add WebSocket notification channel",
			"Fix flaky sprint burndown query",
			"Bump base image to bookworm",
		},
	},
	"analytics_insights": {
		"trigger": "manual",
	},
	"chat_notifier": {
		"message": "*Fleet check* - manual trigger test notification",
	},
}

// demoPayload merges caller data over the agent's demo defaults. Caller
// keys win.
func demoPayload(agentName string, eventData map[string]any) bus.Payload {
	merged := demoDefaults[agentName].Clone()
	if merged == nil {
		merged = bus.Payload{}
	}
	for k, v := range eventData {
		merged[k] = v
	}
	return merged
}
