package graph

import (
	"context"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/rs/zerolog"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"eats-backend/internal/auth"
	"eats-backend/internal/guard"
	"eats-backend/internal/metrics"
)

const (
	forbiddenMessage = "Forbidden resource"
	forbiddenCode    = "FORBIDDEN"
)

// Authorizer decides whether a request may run a root operation.
// *guard.Guard implements it.
type Authorizer interface {
	Authorize(ctx context.Context, operation, token string) guard.Decision
}

// AuthorizeRootFields returns a field middleware that runs authz before every
// Query and Mutation resolver. Denied fields resolve to null with a FORBIDDEN
// error; granted ones see the resolved user through guard.UserFromContext.
// Nested and introspection fields pass through untouched.
func AuthorizeRootFields(authz Authorizer, log zerolog.Logger) graphql.FieldMiddleware {
	log = log.With().Str("component", "graphql").Logger()
	tracer := otel.Tracer("eats-backend/graph")

	return func(ctx context.Context, next graphql.Resolver) (any, error) {
		fc := graphql.GetFieldContext(ctx)
		if !isRootResolver(fc) {
			return next(ctx)
		}

		name := fc.Object + "." + fc.Field.Name
		oc := graphql.GetOperationContext(ctx)
		ctx, span := tracer.Start(ctx, name, trace.WithAttributes(
			attribute.String("graphql.operation.type", string(oc.Operation.Operation)),
			attribute.String("graphql.operation.name", oc.OperationName),
			attribute.String("graphql.field.path", fc.Path().String()),
		))
		defer span.End()

		decision := authz.Authorize(ctx, name, auth.TokenFromContext(ctx))
		metrics.RecordDecision(name, string(decision.Outcome))
		span.SetAttributes(attribute.String("guard.outcome", string(decision.Outcome)))
		if !decision.Allowed {
			evt := log.Debug().Str("operation", name).Str("outcome", string(decision.Outcome))
			if decision.User != nil {
				evt = evt.Int64("user_id", decision.User.ID)
			}
			if decision.Err != nil {
				evt = evt.AnErr("cause", decision.Err)
			}
			evt.Msg("operation denied")
			span.SetStatus(codes.Error, forbiddenMessage)

			return nil, &gqlerror.Error{
				Message:    forbiddenMessage,
				Path:       fc.Path(),
				Extensions: map[string]any{"code": forbiddenCode},
			}
		}

		start := time.Now()
		res, err := next(guard.WithUser(ctx, decision.User))
		status := "ok"
		if err != nil {
			status = "error"
			log.Error().Err(err).Str("operation", name).Msg("resolver failed")
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.RecordOperation(name, status, time.Since(start).Seconds())
		return res, err
	}
}

func isRootResolver(fc *graphql.FieldContext) bool {
	if fc == nil || !fc.IsResolver {
		return false
	}
	return fc.Object == "Query" || fc.Object == "Mutation"
}
