// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SocialEdgeTable represents the 'social.edge' table (likes and subscriptions)
type SocialEdgeTable struct {
	Table     string
	ID        string
	Kind      string
	ActorID   string
	TargetID  string
	CreatedAt string
}

// SocialEdge is the schema definition for social.edge
var SocialEdge = SocialEdgeTable{
	Table:     "social.edge",
	ID:        "id",
	Kind:      "kind",
	ActorID:   "actorid",
	TargetID:  "targetid",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t SocialEdgeTable) Columns() []string {
	return []string{t.ID, t.Kind, t.ActorID, t.TargetID, t.CreatedAt}
}
