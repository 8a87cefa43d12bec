package common

import "github.com/llm-council/council-relay/common/helper"

// Version is overwritten at build time with -ldflags "-X github.com/llm-council/council-relay/common.Version=...".
var Version = "v0.0.0"

// StartTime is the unix second the process started.
var StartTime = helper.GetTimestamp()
