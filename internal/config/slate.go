package config

const (
	envSlateDir        = "SLATE_DIR"
	envProjectionsGlob = "PROJECTIONS_GLOB"
	envSalaryGlob      = "SALARY_GLOB"

	defaultSlateDir        = "data"
	defaultProjectionsGlob = "*DFF*.csv"
	defaultSalaryGlob      = "*FanDuel*.csv"
)

// SlateConfig controls where the daily projection and salary files are found.
type SlateConfig struct {
	Dir             string
	ProjectionsGlob string
	SalaryGlob      string
}

func loadSlate() SlateConfig {
	return SlateConfig{
		Dir:             envOrDefault(envSlateDir, defaultSlateDir),
		ProjectionsGlob: envOrDefault(envProjectionsGlob, defaultProjectionsGlob),
		SalaryGlob:      envOrDefault(envSalaryGlob, defaultSalaryGlob),
	}
}
