package usecase

import (
	"context"
	"log/slog"
)

// Credential environment variables used by the provisioning steps
const (
	EnvPrivateKey    = "PRIVATE_KEY"
	EnvRPCURL        = "ALCHEMY_API_URL"
	EnvWalletAddress = "WALLET_ADDRESS"
)

// EnvironmentReport lists which credential variables are missing
type EnvironmentReport struct {
	Checked []string
	Missing []string
}

// OK reports whether every variable is present
func (r *EnvironmentReport) OK() bool {
	return len(r.Missing) == 0
}

// CheckEnvironment verifies the operator credentials are present. Missing
// values are advisory: they are reported and logged but never fatal.
type CheckEnvironment struct {
	env  EnvironmentReader
	sink ProgressSink
	log  *slog.Logger
}

// NewCheckEnvironment creates a new CheckEnvironment use case
func NewCheckEnvironment(env EnvironmentReader, sink ProgressSink, log *slog.Logger) *CheckEnvironment {
	return &CheckEnvironment{
		env:  env,
		sink: sink,
		log:  log,
	}
}

// Run checks the environment
func (uc *CheckEnvironment) Run(ctx context.Context) *EnvironmentReport {
	report := &EnvironmentReport{
		Checked: []string{EnvPrivateKey, EnvRPCURL, EnvWalletAddress},
	}

	for _, key := range report.Checked {
		if uc.env.Lookup(key) != "" {
			continue
		}
		report.Missing = append(report.Missing, key)
		uc.log.Warn("credential not found", "variable", key)
		uc.sink.Error("🛑 " + key + " not found.")
	}

	return report
}
