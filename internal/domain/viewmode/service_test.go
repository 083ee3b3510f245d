package viewmode

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/logicbyfred/gallery-store/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProduct = "logic-gate-tee"

func setupService(t *testing.T, policy DetectionPolicy) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cat := catalog.NewMemoryCatalog(catalog.DefaultProducts()...)
	return NewService(NewStore(client, time.Hour), cat, policy, logger.Discard()), mr
}

func TestService_FreshViewIsLoading(t *testing.T) {
	svc, _ := setupService(t, DetectionPolicy{})

	d, err := svc.Get(context.Background(), "s1", testProduct)
	require.NoError(t, err)
	assert.Equal(t, ModeLoading, d.Mode)
	assert.False(t, d.ToggleAvailable)
	assert.Equal(t, testProduct, d.ProductID)
}

func TestService_UnknownProduct(t *testing.T) {
	svc, _ := setupService(t, DetectionPolicy{})

	_, err := svc.Get(context.Background(), "s1", "ghost")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestService_SessionRequired(t *testing.T) {
	svc, _ := setupService(t, DetectionPolicy{})

	_, err := svc.ReportRuntimeFailure(context.Background(), "", testProduct)
	assert.ErrorIs(t, err, ErrSessionRequired)
}

func TestService_ProbeThenPreference(t *testing.T) {
	svc, mr := setupService(t, DetectionPolicy{})
	ctx := context.Background()

	d, err := svc.ReportProbe(ctx, "s1", testProduct, ClientReport{Context: true, Renderer: "ANGLE (AMD Radeon)"})
	require.NoError(t, err)
	assert.Equal(t, ModeThreeD, d.Mode)
	assert.True(t, d.ToggleAvailable)
	assert.Equal(t, time.Hour, mr.TTL("viewmode:s1:"+testProduct))

	d, err = svc.SetPreference(ctx, "s1", testProduct, PreferenceTwoD)
	require.NoError(t, err)
	assert.Equal(t, ModeTwoD, d.Mode)
	assert.Equal(t, PreferenceTwoD, d.Preference)

	d, err = svc.Get(ctx, "s1", testProduct)
	require.NoError(t, err)
	assert.Equal(t, ModeTwoD, d.Mode)
}

func TestService_FirstProbeWins(t *testing.T) {
	svc, _ := setupService(t, DetectionPolicy{})
	ctx := context.Background()

	_, err := svc.ReportProbe(ctx, "s1", testProduct, ClientReport{Error: "no webgl"})
	require.NoError(t, err)

	d, err := svc.ReportProbe(ctx, "s1", testProduct, ClientReport{Context: true, Renderer: "SwiftShader"})
	require.NoError(t, err)
	assert.Equal(t, ModeTwoD, d.Mode)
	assert.False(t, d.LowEnd)
	assert.False(t, d.ToggleAvailable)
}

func TestService_LowEndIsInformational(t *testing.T) {
	svc, _ := setupService(t, DetectionPolicy{})

	d, err := svc.ReportProbe(context.Background(), "s1", testProduct, ClientReport{Context: true, Renderer: "llvmpipe"})
	require.NoError(t, err)
	assert.Equal(t, ModeThreeD, d.Mode)
	assert.True(t, d.LowEnd)
}

func TestService_LowEndPolicy(t *testing.T) {
	svc, _ := setupService(t, DetectionPolicy{TreatLowEndAsUnsupported: true})

	d, err := svc.ReportProbe(context.Background(), "s1", testProduct, ClientReport{Context: true, Renderer: "llvmpipe"})
	require.NoError(t, err)
	assert.Equal(t, ModeTwoD, d.Mode)
	assert.True(t, d.LowEnd)
}

func TestService_RuntimeFailureIsSticky(t *testing.T) {
	svc, _ := setupService(t, DetectionPolicy{})
	ctx := context.Background()

	_, err := svc.ReportCapability(ctx, "s1", testProduct, CapabilitySupported)
	require.NoError(t, err)

	d, err := svc.ReportRuntimeFailure(ctx, "s1", testProduct)
	require.NoError(t, err)
	assert.Equal(t, ModeTwoD, d.Mode)
	assert.True(t, d.RuntimeFailed)

	d, err = svc.SetPreference(ctx, "s1", testProduct, PreferenceThreeD)
	require.NoError(t, err)
	assert.Equal(t, ModeTwoD, d.Mode)
}

func TestService_ViewsAreIndependent(t *testing.T) {
	svc, _ := setupService(t, DetectionPolicy{})
	ctx := context.Background()

	_, err := svc.ReportCapability(ctx, "s1", testProduct, CapabilitySupported)
	require.NoError(t, err)
	_, err = svc.ReportRuntimeFailure(ctx, "s1", testProduct)
	require.NoError(t, err)

	d, err := svc.Get(ctx, "s1", "chromatic-drift-hoodie")
	require.NoError(t, err)
	assert.Equal(t, ModeLoading, d.Mode)

	d, err = svc.Get(ctx, "s2", testProduct)
	require.NoError(t, err)
	assert.Equal(t, ModeLoading, d.Mode)
}
