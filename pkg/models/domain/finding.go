package domain

import "time"

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

type WorkflowStatus string

const (
	WorkflowStatusNew WorkflowStatus = "NEW"
)

type RecordState string

const (
	RecordStateActive RecordState = "ACTIVE"
)

// AccountTarget identifies the account and region a finding is reported into
type AccountTarget struct {
	AccountID string
	Region    string
}

type FindingResource struct {
	Type   string // AwsEksCluster
	ID     string // arn:aws:eks:us-east-1:123456789012:cluster/name
	Region string
}

// Finding is a single security finding as reported to the aggregation service.
// It is built once per submission and never stored.
type Finding struct {
	ID             string
	SchemaVersion  string
	ProductArn     string
	ProductName    string
	GeneratorID    string
	AccountID      string
	Types          []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Severity       Severity
	Title          string
	Description    string
	Resources      []FindingResource
	RecordState    RecordState
	WorkflowStatus WorkflowStatus
}
