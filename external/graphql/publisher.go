package graphql

import (
	"context"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
	"github.com/riskibarqy/team-manager/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	operationName = "UpdateTeamConfiguration"

	updateTeamConfigurationMutation = `mutation UpdateTeamConfiguration($input: TeamConfigurationInput!) {
  updateTeamConfiguration(input: $input) {
    teamId
  }
}`

	maxLoggedBody = 2048
)

var (
	errGraphQLTransient = crerr.New("graphql transient failure")

	tracer = otel.Tracer("team-manager/external/graphql")
)

type PublisherConfig struct {
	Endpoint       string
	Token          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Publisher sends saved team configurations to a remote GraphQL API.
type Publisher struct {
	client         *fasthttp.Client
	endpoint       string
	token          string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewPublisher(cfg PublisherConfig, logger *logging.Logger) (*Publisher, error) {
	endpoint, err := validateEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid TEAM_GRAPHQL_ENDPOINT")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	breakerCfg := cfg.CircuitBreaker.Normalized()
	breaker := resilience.NewCircuitBreaker("team-graphql", breakerCfg, func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
	})

	publisher := &Publisher{
		client: &fasthttp.Client{
			Name:                "team-manager",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 30 * time.Second,
		},
		endpoint:       endpoint,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}
	logger.Info("team graphql publisher configured",
		append([]any{"endpoint", endpoint, "timeout", timeout.String()}, breakerCfg.LogFields()...)...,
	)

	return publisher, nil
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type configurationInput struct {
	TeamID       string          `json:"teamId"`
	GameFormatID string          `json:"gameFormatId"`
	FormationID  string          `json:"formationId"`
	Positions    []positionInput `json:"positions"`
}

type positionInput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

type response struct {
	Errors []responseError `json:"errors"`
}

type responseError struct {
	Message string `json:"message"`
	Path    []any  `json:"path"`
}

// PublishTeamConfiguration runs the UpdateTeamConfiguration mutation. GraphQL
// errors in a 200 response count as a failed publish.
func (p *Publisher) PublishTeamConfiguration(ctx context.Context, teamID string, cfg teamsetup.Snapshot) (err error) {
	ctx, span := tracer.Start(ctx, "graphql.Publisher.PublishTeamConfiguration")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("graphql.operation", operationName),
		attribute.String("team.id", teamID),
	)

	if p.circuitEnabled {
		if err := p.breaker.Allow(); err != nil {
			p.logger.WarnContext(ctx, "graphql circuit breaker rejected request", "state", string(p.breaker.State()))
			return crerr.Wrap(err, "team graphql api is temporarily unavailable")
		}
	}

	callErr := p.publish(ctx, teamID, cfg)
	p.recordCircuitResult(callErr)
	return callErr
}

func (p *Publisher) publish(ctx context.Context, teamID string, cfg teamsetup.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return crerr.Wrap(err, "publish team configuration")
	}

	body := bytebufferpool.Get()
	defer bytebufferpool.Put(body)
	if err := sonic.ConfigDefault.NewEncoder(body).Encode(buildRequest(teamID, cfg)); err != nil {
		return crerr.Wrap(err, "encode graphql request")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	req.SetBody(body.B)

	deadline := time.Now().Add(p.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	p.logger.DebugContext(ctx, "graphql publish request", "endpoint", p.endpoint, "team_id", teamID, "body", truncateForLog(body.String()))

	if err := p.client.DoDeadline(req, resp, deadline); err != nil {
		return crerr.Wrapf(crerr.Mark(err, errGraphQLTransient), "post %s", p.endpoint)
	}

	status := resp.StatusCode()
	raw := resp.Body()
	if status/100 != 2 {
		callErr := crerr.Newf("graphql status=%d body=%s", status, truncateForLog(strings.TrimSpace(string(raw))))
		if isRetryableStatus(status) {
			callErr = crerr.Mark(callErr, errGraphQLTransient)
		}
		return callErr
	}

	var out response
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &out); err != nil {
			return crerr.Wrap(err, "decode graphql response")
		}
	}
	if len(out.Errors) > 0 {
		return crerr.Newf("graphql %s failed: %s", operationName, joinErrorMessages(out.Errors))
	}

	p.logger.InfoContext(ctx, "team configuration published", "team_id", teamID, "formation_id", cfg.FormationID)
	return nil
}

func buildRequest(teamID string, cfg teamsetup.Snapshot) request {
	input := configurationInput{
		TeamID:       teamID,
		GameFormatID: cfg.GameFormatID,
		FormationID:  cfg.FormationID,
		Positions:    make([]positionInput, 0, len(cfg.Positions)),
	}
	for _, p := range cfg.Positions {
		input.Positions = append(input.Positions, positionInput(p))
	}

	return request{
		Query:         updateTeamConfigurationMutation,
		OperationName: operationName,
		Variables:     map[string]any{"input": input},
	}
}

func joinErrorMessages(items []responseError) string {
	msgs := make([]string, 0, len(items))
	for _, item := range items {
		msgs = append(msgs, strings.TrimSpace(item.Message))
	}
	return strings.Join(msgs, "; ")
}

func (p *Publisher) recordCircuitResult(err error) {
	if !p.circuitEnabled || p.breaker == nil {
		return
	}
	// Only transport and 5xx-class failures count against the dependency.
	if err != nil && !crerr.Is(err, errGraphQLTransient) {
		err = nil
	}
	p.breaker.Record(err)
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusRequestTimeout ||
		status == fasthttp.StatusTooManyRequests ||
		status >= fasthttp.StatusInternalServerError
}

func validateEndpoint(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return candidate, nil
}

func truncateForLog(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	return value[:maxLoggedBody] + "...(truncated)"
}
