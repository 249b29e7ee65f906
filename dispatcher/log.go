package dispatcher

import (
	"deskclient/logging"
	"deskclient/queue"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}

// logResult reports a finished request. backendErr is the "error" field the
// backend may put in an otherwise successful reply.
func logResult(res queue.RequestResult, backendErr string) {
	entry := log.WithFields(logrus.Fields{
		"action":     res.Action,
		"request_id": res.RequestID,
		"duration":   res.Duration,
	})
	if res.Error != nil {
		entry.Errorf("Error: %v", res.Error)
		return
	}
	if backendErr != "" {
		entry.Warnf("Backend reported: %s", backendErr)
		return
	}
	entry.Debug("Completed")
}
