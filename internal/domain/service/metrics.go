package service

// Metrics records evaluation activity. Implemented by pkg/metrics with
// Prometheus; kept as an interface so usecases stay transport-free.
type Metrics interface {
	RecordEvaluation(component string)
	RecordStressScore(score int)
	RecordLatency(op string, seconds float64)
	RecordError(kind string)
}
