package usecase

import (
	"context"
	"time"

	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"go.uber.org/zap"
)

const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"

	ServiceStatusConfigured    = "configured"
	ServiceStatusMissing       = "missing"
	ServiceStatusConnected     = "connected"
	ServiceStatusUnavailable   = "unavailable"
	ServiceStatusDisabled      = "disabled"
	ServiceStatusMisconfigured = "misconfigured"

	storePingTimeout = 2 * time.Second
)

// HealthInputs is the configuration view the health report is built from.
type HealthInputs struct {
	CRMConfigured      bool
	EmailKeyPresent    bool
	EmailNotifications bool
	RateLimitEnabled   bool
	IPLimit            RateWindow
	EmailLimit         RateWindow
}

// HealthReport aggregates the status of the registration dependencies.
type HealthReport struct {
	Status    string
	Services  map[string]string
	CheckedAt time.Time
}

func (r HealthReport) Healthy() bool {
	return r.Status == HealthStatusHealthy
}

type IHealthUseCase interface {
	Check(ctx context.Context) HealthReport
}

type HealthUseCase struct {
	store  interfaces.ITTLStore
	inputs HealthInputs
	now    func() time.Time
}

var _ IHealthUseCase = (*HealthUseCase)(nil)

func NewHealthUseCase(store interfaces.ITTLStore, inputs HealthInputs) *HealthUseCase {
	return &HealthUseCase{store: store, inputs: inputs, now: time.Now}
}

func (u *HealthUseCase) Check(ctx context.Context) HealthReport {
	services := map[string]string{}
	healthy := true

	if u.inputs.CRMConfigured {
		services["crm"] = ServiceStatusConfigured
	} else {
		services["crm"] = ServiceStatusMissing
		healthy = false
	}

	services["cache"] = u.pingStore(ctx)
	if services["cache"] != ServiceStatusConnected {
		healthy = false
	}

	switch {
	case !u.inputs.EmailNotifications:
		services["email"] = ServiceStatusDisabled
	case u.inputs.EmailKeyPresent:
		services["email"] = ServiceStatusConfigured
	default:
		services["email"] = ServiceStatusMissing
		healthy = false
	}

	switch {
	case !u.inputs.RateLimitEnabled:
		services["rateLimit"] = ServiceStatusDisabled
	case validWindow(u.inputs.IPLimit) && validWindow(u.inputs.EmailLimit):
		services["rateLimit"] = ServiceStatusConfigured
	default:
		services["rateLimit"] = ServiceStatusMisconfigured
		healthy = false
	}

	status := HealthStatusHealthy
	if !healthy {
		status = HealthStatusDegraded
		logger.FromContext(ctx).Warn("[health][usecase] degraded", zap.Any("services", services))
	}
	return HealthReport{Status: status, Services: services, CheckedAt: u.now().UTC()}
}

func (u *HealthUseCase) pingStore(ctx context.Context) string {
	if u.store == nil {
		return ServiceStatusMissing
	}
	cctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()
	if err := u.store.Ping(cctx); err != nil {
		logger.FromContext(ctx).Warn("[health][usecase] store ping failed", zap.Error(err))
		return ServiceStatusUnavailable
	}
	return ServiceStatusConnected
}

func validWindow(w RateWindow) bool {
	return w.Window > 0 && w.Max > 0
}
