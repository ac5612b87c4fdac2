package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/edvin/cdhplugin/internal/metrics"
	"github.com/edvin/cdhplugin/internal/model"
	"github.com/edvin/cdhplugin/internal/platform"
	"github.com/edvin/cdhplugin/internal/validation"
)

const validationRunColumns = `id, cluster_name, operation, plugin_version, result, error_code, error_message, request, created_at`

// Verdict is the outcome of one validation request. Violation holds the typed
// validation error and is nil when the topology passed.
type Verdict struct {
	Run       *model.ValidationRun
	Violation error
}

// ValidationService runs the topology engine on behalf of the orchestrator and
// records every verdict.
type ValidationService struct {
	db             DB
	defaultVersion string
	logger         zerolog.Logger
	now            func() time.Time
}

func NewValidationService(db DB, defaultVersion string, logger zerolog.Logger) *ValidationService {
	return &ValidationService{
		db:             db,
		defaultVersion: defaultVersion,
		logger:         logger.With().Str("component", "validation").Logger(),
		now:            time.Now,
	}
}

func (s *ValidationService) validator(c *model.Cluster) (*validation.Validator, error) {
	version := c.PluginVersion
	if version == "" {
		version = s.defaultVersion
	}
	rules, err := validation.RulesFor(version)
	if err != nil {
		return nil, err
	}
	return validation.NewValidator(rules), nil
}

// ValidateCluster checks a cluster about to be created.
func (s *ValidationService) ValidateCluster(ctx context.Context, c *model.Cluster) (*Verdict, error) {
	payload := map[string]any{"cluster": c}
	return s.run(ctx, model.OperationClusterCreating, c, payload, func(v *validation.Validator) error {
		return v.ValidateClusterCreating(c)
	})
}

// ValidateAdditionalScaling checks bringing new node groups to the given counts.
func (s *ValidationService) ValidateAdditionalScaling(ctx context.Context, c *model.Cluster, counts map[string]int) (*Verdict, error) {
	payload := map[string]any{"cluster": c, "node_groups": counts}
	return s.run(ctx, model.OperationAdditionalNGScaling, c, payload, func(v *validation.Validator) error {
		return v.ValidateAdditionalNGScaling(c, counts)
	})
}

// ValidateExistingScaling checks resizing existing node groups to the given counts.
func (s *ValidationService) ValidateExistingScaling(ctx context.Context, c *model.Cluster, counts map[string]int) (*Verdict, error) {
	payload := map[string]any{"cluster": c, "node_groups": counts}
	return s.run(ctx, model.OperationExistingNGScaling, c, payload, func(v *validation.Validator) error {
		return v.ValidateExistingNGScaling(c, counts)
	})
}

func (s *ValidationService) run(ctx context.Context, operation string, c *model.Cluster, payload any, check func(*validation.Validator) error) (*Verdict, error) {
	v, err := s.validator(c)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", operation, c.Name, err)
	}

	start := s.now()
	violation := check(v)
	elapsed := s.now().Sub(start)

	code := validation.CodeOf(violation)
	if violation != nil && code == "" {
		return nil, fmt.Errorf("%s %s: %w", operation, c.Name, violation)
	}

	request, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal validation request: %w", err)
	}

	run := &model.ValidationRun{
		ID:            platform.NewID(),
		ClusterName:   c.Name,
		Operation:     operation,
		PluginVersion: v.Version(),
		Result:        model.RunPassed,
		Request:       request,
		CreatedAt:     s.now().UTC(),
	}
	if violation != nil {
		msg := violation.Error()
		run.Result = model.RunFailed
		run.ErrorCode = &code
		run.ErrorMessage = &msg
	}

	metrics.ObserveValidation(operation, run.Result, elapsed)

	event := s.logger.Info()
	if violation != nil {
		event = s.logger.Warn().Str("code", code).Str("error", *run.ErrorMessage)
	}
	event.Str("run_id", run.ID).
		Str("cluster", c.Name).
		Str("operation", operation).
		Str("plugin_version", run.PluginVersion).
		Str("result", run.Result).
		Dur("duration", elapsed).
		Msg("topology validated")

	if err := s.create(ctx, run); err != nil {
		return nil, err
	}
	return &Verdict{Run: run, Violation: violation}, nil
}

func (s *ValidationService) create(ctx context.Context, run *model.ValidationRun) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO validation_runs (`+validationRunColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		run.ID, run.ClusterName, run.Operation, run.PluginVersion, run.Result,
		run.ErrorCode, run.ErrorMessage, run.Request, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create validation run: %w", err)
	}
	return nil
}

func (s *ValidationService) GetByID(ctx context.Context, id string) (*model.ValidationRun, error) {
	var r model.ValidationRun
	err := s.db.QueryRow(ctx,
		`SELECT `+validationRunColumns+` FROM validation_runs WHERE id = $1`, id,
	).Scan(&r.ID, &r.ClusterName, &r.Operation, &r.PluginVersion, &r.Result,
		&r.ErrorCode, &r.ErrorMessage, &r.Request, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get validation run %s: %w", id, err)
	}
	return &r, nil
}

// List returns runs oldest first, optionally restricted to one cluster name.
// Run IDs are UUIDv7, so ID order is creation order and the cursor is the last ID.
func (s *ValidationService) List(ctx context.Context, clusterName string, limit int, cursor string) ([]model.ValidationRun, bool, error) {
	query := `SELECT ` + validationRunColumns + ` FROM validation_runs WHERE true`
	args := []any{}
	argIdx := 1

	if clusterName != "" {
		query += fmt.Sprintf(` AND cluster_name = $%d`, argIdx)
		args = append(args, clusterName)
		argIdx++
	}
	if cursor != "" {
		query += fmt.Sprintf(` AND id > $%d`, argIdx)
		args = append(args, cursor)
		argIdx++
	}

	query += ` ORDER BY id`
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit+1)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list validation runs: %w", err)
	}
	defer rows.Close()

	var runs []model.ValidationRun
	for rows.Next() {
		var r model.ValidationRun
		if err := rows.Scan(&r.ID, &r.ClusterName, &r.Operation, &r.PluginVersion, &r.Result,
			&r.ErrorCode, &r.ErrorMessage, &r.Request, &r.CreatedAt); err != nil {
			return nil, false, fmt.Errorf("scan validation run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate validation runs: %w", err)
	}

	hasMore := len(runs) > limit
	if hasMore {
		runs = runs[:limit]
	}
	return runs, hasMore, nil
}

// NodeProcesses returns the service → processes catalog for a plugin version.
func (s *ValidationService) NodeProcesses(version string) (map[string][]string, error) {
	if version == "" {
		version = s.defaultVersion
	}
	rules, err := validation.RulesFor(version)
	if err != nil {
		return nil, err
	}
	return validation.NewValidator(rules).NodeProcesses(), nil
}
