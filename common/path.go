package common

import (
	"os"
	"regexp"
	"strings"

	"github.com/Laisky/zap"

	"github.com/llm-council/council-relay/common/logger"
)

var windowsEnvPattern = regexp.MustCompile(`%([A-Za-z0-9_]+)%`)

// expandLogDirPath resolves $VAR and %VAR% placeholders in the --log-dir value.
// Unknown %VAR% placeholders are kept verbatim.
func expandLogDirPath(path string) string {
	logger.Logger.Debug("expand log dir path", zap.String("path", path))
	if path == "" {
		return ""
	}

	expanded := os.ExpandEnv(path)

	expanded = windowsEnvPattern.ReplaceAllStringFunc(expanded, func(match string) string {
		key := strings.Trim(match, "%")
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return match
	})

	return expanded
}
