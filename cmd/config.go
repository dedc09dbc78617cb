package cmd

// Config carries the environment-driven settings the service boots with.
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	AutoAssignSchedule string
	FlightTickInterval string
	RouteSteps         string
}
