package store

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Audit appends one timestamped line to the audit log. The log is
// append-only; this system never rotates or truncates it.
func (s *Store) Audit(message string) {
	f, err := os.OpenFile(s.auditPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.logger.Error("open audit log failed", zap.String("path", s.auditPath), zap.Error(err))
		return
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), message)
	if _, err := f.WriteString(line); err != nil {
		s.logger.Error("append audit log failed", zap.Error(err))
	}
}
