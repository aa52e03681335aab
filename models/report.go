// path: models/report.go
package models

import "time"

// Placeholder identity values substituted for anonymous submissions.
const (
	AnonymousPerson = "Anonymous"
	AnonymousUserID = "anonymous"
)

// Report is one stored user report. Records are immutable after creation:
// they are appended by the submission handler and only ever read back.
type Report struct {
	ID                string    `bson:"id" json:"id"`
	Person            string    `bson:"person" json:"person"`
	UserID            string    `bson:"userId" json:"userId"`
	Reason            string    `bson:"reason" json:"reason"`
	ProofFilename     string    `bson:"proofFilename" json:"proofFilename"`
	ProofOriginalName string    `bson:"proofOriginalName" json:"proofOriginalName"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
}
