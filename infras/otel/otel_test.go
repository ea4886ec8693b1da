package otel_test

import (
	"context"
	"errors"
	"testing"

	"hotelgen/config"
	"hotelgen/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hotelgen-test"

	o := otel.New(cfg)

	ctx, scope := o.NewScope(context.Background(), "service", "service.Date.Generate")
	require.NotNil(t, ctx)

	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{
			"rows":    1826,
			"sheet":   "Date",
			"cached":  false,
			"columns": []string{"DateID", "FullDate"},
			"score":   77.5,
		})
		scope.AddEvent("generated")
		scope.TraceIfError(nil)
		scope.TraceIfError(errors.New("boom"))
		scope.End()
	})

	assert.NoError(t, o.Shutdown(context.Background()))
}
