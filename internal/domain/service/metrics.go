package service

// MonitorMetrics records what the monitors and delivery paths did.
type MonitorMetrics interface {
	LocationReported(simulated bool)
	GeofenceEvaluated(outcome string)
	BreachDetected()
	ReminderSurfaced(kind string)
	AssistantCommand(kind string, accepted bool)
	LLMRequest(provider string, err error)
	PushDelivered(kind string, sent, failed int)
}
