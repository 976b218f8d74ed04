// Package joblist collects named external jobs and writes the jobList file
// the queue driver imports.
package joblist

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/eqsim/equeue/extjob"
)

// JobList keeps jobs in insertion order, keyed by name. Re-adding a name
// replaces the job but keeps its original position.
type JobList struct {
	names []string
	jobs  map[string]*extjob.ExtJob
}

func New() *JobList {
	return &JobList{jobs: make(map[string]*extjob.ExtJob)}
}

// Add registers job under name, replacing any job previously added under the
// same name.
func (jl *JobList) Add(name string, job *extjob.ExtJob) {
	if _, ok := jl.jobs[name]; !ok {
		jl.names = append(jl.names, name)
	}
	jl.jobs[name] = job
}

// Get returns the job registered under name, if any.
func (jl *JobList) Get(name string) (*extjob.ExtJob, bool) {
	job, ok := jl.jobs[name]
	return job, ok
}

// Names returns the job names in insertion order.
func (jl *JobList) Names() []string {
	names := make([]string, len(jl.names))
	copy(names, jl.names)
	return names
}

func (jl *JobList) Len() int {
	return len(jl.names)
}

// EmitPython writes the whole list as a python module assigning jobList. Each
// job block keeps the driver's fixed per-job layout; this function only adds
// the list framing around the blocks.
func (jl *JobList) EmitPython(w io.Writer) error {
	if _, err := io.WriteString(w, "jobList = [\n"); err != nil {
		return errors.Wrap(err, "emitting jobList header")
	}
	for i, name := range jl.names {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return errors.Wrap(err, "emitting jobList separator")
			}
		}
		if err := jl.jobs[name].EmitPython(w); err != nil {
			return errors.Wrapf(err, "emitting job %s", name)
		}
	}
	if _, err := io.WriteString(w, "]\n"); err != nil {
		return errors.Wrap(err, "emitting jobList footer")
	}
	return nil
}

// WriteFile writes the jobList file at filename, replacing any existing file.
func (jl *JobList) WriteFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating jobList file %s", filename)
	}
	defer f.Close()

	if err := jl.EmitPython(f); err != nil {
		return err
	}
	log.Infof("Wrote %d job(s) to %s", jl.Len(), filename)
	return nil
}
