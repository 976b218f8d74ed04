package extjob

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// EmitPython writes the job as the python dict literal the queue driver
// imports. The byte layout is fixed and parsed textually downstream: nine
// fields in a set order, absent strings as None, present strings quoted with
// no escaping, lists and mappings with no internal spaces. The priority is
// queue-side metadata and is never written. The stream is neither flushed nor
// closed.
func (job *ExtJob) EmitPython(w io.Writer) error {
	pw := &pyWriter{w: w}
	pw.printf(" {")
	pw.stringField(0, "portable_exe", job.portableExe)
	pw.endLine()
	pw.stringField(2, "init_code", job.initCode)
	pw.endLine()
	pw.stringField(2, "target_file", job.targetFile)
	pw.endLine()
	pw.stringField(2, "stdout", job.stdoutFile)
	pw.endLine()
	pw.stringField(2, "stderr", job.stderrFile)
	pw.endLine()
	pw.stringField(2, "stdin", job.stdinFile)
	pw.endLine()
	pw.listField(2, "argList", job.argList)
	pw.endLine()
	pw.hashField(2, "environment", job.environment)
	pw.endLine()
	pw.hashField(2, "platform_exe", job.platformExe)
	pw.printf("}\n")
	return errors.Wrap(pw.err, "emitting job dict")
}

// pyWriter latches the first write error and skips everything after it, so a
// broken stream is reported once rather than written to repeatedly.
type pyWriter struct {
	w   io.Writer
	err error
}

func (pw *pyWriter) printf(format string, args ...interface{}) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, format, args...)
}

func (pw *pyWriter) endLine() {
	pw.printf(",\n")
}

func (pw *pyWriter) indent(n int) {
	for i := 0; i < n; i++ {
		pw.printf(" ")
	}
}

func (pw *pyWriter) stringField(indent int, key string, value *string) {
	pw.indent(indent)
	if value == nil {
		pw.printf("\"%s\" : None", key)
	} else {
		pw.printf("\"%s\" : \"%s\"", key, *value)
	}
}

func (pw *pyWriter) listField(indent int, key string, list []string) {
	pw.indent(indent)
	pw.printf("\"%s\" : [", key)
	for i, elem := range list {
		if i > 0 {
			pw.printf(",")
		}
		pw.printf("\"%s\"", elem)
	}
	pw.printf("]")
}

func (pw *pyWriter) hashField(indent int, key string, hash map[string]string) {
	pw.indent(indent)
	pw.printf("\"%s\" : {", key)
	first := true
	for k, v := range hash {
		if !first {
			pw.printf(",")
		}
		pw.printf("\"%s\":\"%s\"", k, v)
		first = false
	}
	pw.printf("}")
}
