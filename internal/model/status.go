package model

// Validation run results.
const (
	RunPassed = "passed"
	RunFailed = "failed"
)

// Validation operations, named after the orchestrator entry points.
const (
	OperationClusterCreating     = "cluster_creating"
	OperationAdditionalNGScaling = "additional_ng_scaling"
	OperationExistingNGScaling   = "existing_ng_scaling"
)
