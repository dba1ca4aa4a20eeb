// Package rlog is the logging façade of this module, grounded on
// cmd/go2x3/main.go's direct use of github.com/plan-systems/klog: a
// single flag-configured, leveled, glog-style logger. Its callers are the
// cmd/* commands and internal/pipeline; the engine and I/O packages do
// not log.
package rlog

import (
	"flag"

	"github.com/natefinch/lumberjack"
	"github.com/plan-systems/klog"
)

// InitFlags registers klog's flags (-logtostderr, -v, ...) on fs. Command
// entry points call this before flag.Parse(), exactly as
// cmd/go2x3/main.go does.
func InitFlags(fs *flag.FlagSet) {
	klog.InitFlags(fs)
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 18,
		UseColor:          true,
	})
}

// UseRotatingFile redirects klog's output to a size- and age-bounded
// rotating file, grounded on janelia-flyem-dvid/dvid/log_local.go's use of
// natefinch/lumberjack for the same purpose. maxSizeMB and maxAgeDays of
// zero fall back to lumberjack's defaults.
func UseRotatingFile(path string, maxSizeMB, maxAgeDays int) {
	if path == "" {
		return
	}
	klog.SetOutput(&lumberjack.Logger{
		Filename: path,
		MaxSize:  maxSizeMB,
		MaxAge:   maxAgeDays,
	})
}

// Flush flushes any buffered log entries. Command entry points defer this.
func Flush() { klog.Flush() }

// Infof logs at info level.
func Infof(format string, args ...interface{}) { klog.Infof(format, args...) }

// Warningf logs at warning level.
func Warningf(format string, args ...interface{}) { klog.Warningf(format, args...) }

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) { klog.Errorf(format, args...) }

// Fatalf logs at error level then terminates the process, matching the
// fatal-on-resource/I-O-error propagation policy in spec §7.
func Fatalf(format string, args ...interface{}) { klog.Fatalf(format, args...) }

// V reports whether verbosity level v is enabled, mirroring klog.V so
// call sites can gate expensive progress-message formatting:
//
//	rlog.V(2).Infof("batch %d: popped %d tokens", batch, n)
func V(level klog.Level) klog.Verbose { return klog.V(level) }
