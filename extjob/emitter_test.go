package extjob

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// The driver parses the emitted block textually, so these tests pin exact
// bytes wherever the layout is deterministic.

const emptyJobDict = ` {"portable_exe" : None,
  "init_code" : None,
  "target_file" : None,
  "stdout" : None,
  "stderr" : None,
  "stdin" : None,
  "argList" : [],
  "environment" : {},
  "platform_exe" : {}}
`

func Test_EmitEmptyJob(t *testing.T) {
	job := NewExtJob(0)

	var buf bytes.Buffer
	if err := job.EmitPython(&buf); err != nil {
		t.Fatalf("error: couldn't emit the empty job. %s\n", err.Error())
	}
	if buf.String() != emptyJobDict {
		t.Errorf("error: empty job emitted wrong bytes.\ngot:\n%q\nwant:\n%q\n", buf.String(), emptyJobDict)
	}
}

func Test_EmitPopulatedJob(t *testing.T) {
	job := NewExtJob(5)
	job.SetPortableExe("ecl.exe")
	job.AddArg("-i")
	job.AddArg("in.dat")

	var buf bytes.Buffer
	if err := job.EmitPython(&buf); err != nil {
		t.Fatalf("error: couldn't emit the populated job. %s\n", err.Error())
	}

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != ` {"portable_exe" : "ecl.exe",` {
		t.Errorf("error: wrong first line: %q\n", lines[0])
	}
	if lines[6] != `  "argList" : ["-i","in.dat"],` {
		t.Errorf("error: wrong argList line: %q\n", lines[6])
	}
	for _, line := range []string{
		`  "init_code" : None,`,
		`  "target_file" : None,`,
		`  "stdout" : None,`,
		`  "stderr" : None,`,
		`  "stdin" : None,`,
		`  "environment" : {},`,
		`  "platform_exe" : {}}`,
	} {
		if !strings.Contains(buf.String(), line+"\n") {
			t.Errorf("error: emitted text is missing line %q.\ngot:\n%s\n", line, buf.String())
		}
	}
}

func Test_EmitEnvironmentEntries(t *testing.T) {
	job := NewExtJob(0)
	job.AddEnvironment("F_UFMTENDIAN", "big")
	job.AddEnvironment("LM_LICENSE_FILE", "1700@host")

	var buf bytes.Buffer
	if err := job.EmitPython(&buf); err != nil {
		t.Fatalf("error: couldn't emit the job. %s\n", err.Error())
	}

	// mapping order is unspecified, so accept either permutation
	lines := strings.Split(buf.String(), "\n")
	envLine := lines[7]
	perm1 := `  "environment" : {"F_UFMTENDIAN":"big","LM_LICENSE_FILE":"1700@host"},`
	perm2 := `  "environment" : {"LM_LICENSE_FILE":"1700@host","F_UFMTENDIAN":"big"},`
	if envLine != perm1 && envLine != perm2 {
		t.Errorf("error: wrong environment line: %q\njob: %s\n", envLine, spew.Sdump(job))
	}
}

func Test_EmitOverwrittenStdout(t *testing.T) {
	job := NewExtJob(0)
	job.SetStdoutFile("a.out")
	job.SetStdoutFile("b.out")

	var buf bytes.Buffer
	if err := job.EmitPython(&buf); err != nil {
		t.Fatalf("error: couldn't emit the job. %s\n", err.Error())
	}
	if !strings.Contains(buf.String(), `  "stdout" : "b.out",`+"\n") {
		t.Errorf("error: expected the re-set stdout file to win.\ngot:\n%s\n", buf.String())
	}
	if strings.Contains(buf.String(), "a.out") {
		t.Errorf("error: the replaced stdout file leaked into the output.\ngot:\n%s\n", buf.String())
	}
}

func Test_EmitOverwrittenPlatformExe(t *testing.T) {
	job := NewExtJob(0)
	job.AddPlatformExe("x86_64", "/p/x")
	job.AddPlatformExe("ia64", "/p/i")
	job.AddPlatformExe("x86_64", "/p/y")

	var buf bytes.Buffer
	if err := job.EmitPython(&buf); err != nil {
		t.Fatalf("error: couldn't emit the job. %s\n", err.Error())
	}
	if !strings.Contains(buf.String(), `"x86_64":"/p/y"`) {
		t.Errorf("error: expected the re-added x86_64 path.\ngot:\n%s\n", buf.String())
	}
	if !strings.Contains(buf.String(), `"ia64":"/p/i"`) {
		t.Errorf("error: expected the ia64 path.\ngot:\n%s\n", buf.String())
	}
	if strings.Contains(buf.String(), "/p/x") {
		t.Errorf("error: the replaced x86_64 path leaked into the output.\ngot:\n%s\n", buf.String())
	}
}

func Test_PriorityNotEmitted(t *testing.T) {
	var reference string
	for i, priority := range []int{-5, 0, 1, 42, 1 << 20} {
		job := NewExtJob(priority)
		job.SetPortableExe("eclipse.exe")
		job.AddArg("-v")

		var buf bytes.Buffer
		if err := job.EmitPython(&buf); err != nil {
			t.Fatalf("error: couldn't emit the job. %s\n", err.Error())
		}
		if i == 0 {
			reference = buf.String()
			continue
		}
		if buf.String() != reference {
			t.Errorf("error: emission depends on the priority.\npriority %d gave:\n%s\nreference:\n%s\n",
				priority, buf.String(), reference)
		}
	}
}

// failingWriter fails every Write and counts how many were attempted.
type failingWriter struct {
	writes int
}

func (fw *failingWriter) Write(p []byte) (int, error) {
	fw.writes++
	return 0, fmt.Errorf("stream is broken")
}

func Test_EmitToFailingWriter(t *testing.T) {
	job := NewExtJob(0)
	job.SetPortableExe("ecl.exe")

	fw := &failingWriter{}
	err := job.EmitPython(fw)
	if err == nil {
		t.Fatalf("error: expected the stream failure to surface\n")
	}
	if errors.Cause(err).Error() != "stream is broken" {
		t.Errorf("error: expected the stream's own error as cause, got %s\n", errors.Cause(err).Error())
	}
	if fw.writes != 1 {
		t.Errorf("error: expected no writes after the first failure, got %d writes\n", fw.writes)
	}
}
