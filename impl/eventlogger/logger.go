package eventlogger

import (
	"go.uber.org/zap"
)

// EventLogger writes the events of one simulation run.
type EventLogger struct {
	runID  string
	logger *zap.Logger
}

func InitEventLogger(runID string, logger *zap.Logger) *EventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := new(EventLogger)
	l.runID = runID
	l.logger = logger.With(zap.String("run", runID))
	return l
}

func (el *EventLogger) Logger() *zap.Logger {
	return el.logger
}

func (el *EventLogger) LogCycleStart(cycle int) {
	el.logger.Info("Running simulation cycle", zap.Int("cycle", cycle))
}

func (el *EventLogger) LogOverlayBuilt(nodes int, edges int) {
	el.logger.Info("Built initial overlay", zap.Int("nodes", nodes), zap.Int("edges", edges))
}

func (el *EventLogger) LogCycleSummary(cycle int, sent int, infected int, nodes int) {
	el.logger.Info(
		"Number of infected nodes after sending messages",
		zap.Int("cycle", cycle),
		zap.Int("sent", sent),
		zap.Int("infected", infected),
		zap.Int("nodes", nodes))
}

func (el *EventLogger) LogNoMessageSent(cycle int, nodes int, reason string) {
	el.logger.Warn(
		"No message was sent by any node",
		zap.Int("cycle", cycle),
		zap.Int("nodes", nodes),
		zap.String("reason", reason))
}

func (el *EventLogger) LogClamp(nodes int, maxNeighbors int) {
	el.logger.Warn(
		"The number of existing nodes is not greater than the max number of neighbors by node. "+
			"Using the number of nodes as max neighborhood size.",
		zap.Int("nodes", nodes),
		zap.Int("maxNeighbors", maxNeighbors))
}

func (el *EventLogger) LogSend(node string, recipients int, sendToAll bool, neighbors int) {
	selection := "randomly selected"
	if sendToAll {
		selection = "existing"
	}
	el.logger.Debug(
		node+" is sending a message",
		zap.Int("recipients", recipients),
		zap.String("selection", selection),
		zap.Int("neighbors", neighbors))
}

func (el *EventLogger) LogReceive(node string, source string) {
	el.logger.Debug(node+" received message", zap.String("from", source))
}

func (el *EventLogger) LogRejected(node string, source string) {
	el.logger.Debug(node+" rejected message", zap.String("from", source))
}

func (el *EventLogger) LogNothingToSend(node string) {
	el.logger.Warn(node + " has no stored message to send")
}

func (el *EventLogger) LogNoNeighbors(node string) {
	el.logger.Warn(node + " has no neighbors to send messages to")
}

func (el *EventLogger) LogSampleShortcut(requested int, available int, matching int) {
	el.logger.Debug(
		"Requested more random nodes than available, selecting all matching ones",
		zap.Int("requested", requested),
		zap.Int("available", available),
		zap.Int("matching", matching))
}
