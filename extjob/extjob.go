// Package extjob provides definitions for the external jobs handled by the
// queue driver: which executable to launch, its arguments, environment and
// stream redirections.
package extjob

// ExtJob describes one external executable invocation. The queue uses the
// priority; everything else is consumed by the driver that launches the job.
// An ExtJob is not safe for concurrent mutation; concurrent emission of an
// unchanging job is fine.
type ExtJob struct {
	priority    int
	portableExe *string
	initCode    *string
	targetFile  *string
	stdoutFile  *string
	stderrFile  *string
	stdinFile   *string
	argList     []string
	platformExe map[string]string
	environment map[string]string
}

// NewExtJob returns a job with the given queue priority. All optional fields
// start out absent and both mappings start out empty.
func NewExtJob(priority int) *ExtJob {
	return &ExtJob{
		priority:    priority,
		platformExe: make(map[string]string),
		environment: make(map[string]string),
	}
}

// Priority returns the queue priority the job was created with. The priority
// never appears in emitted output.
func (job *ExtJob) Priority() int {
	return job.priority
}

// SetPortableExe sets the platform-independent executable path, replacing any
// prior value. There is no unset; absence is the initial state only.
func (job *ExtJob) SetPortableExe(portableExe string) {
	job.portableExe = &portableExe
}

// SetInitCode sets the code snippet the driver runs before starting the
// executable. The snippet is opaque to the job.
func (job *ExtJob) SetInitCode(initCode string) {
	job.initCode = &initCode
}

// SetTargetFile sets the file the driver expects the job to produce.
func (job *ExtJob) SetTargetFile(targetFile string) {
	job.targetFile = &targetFile
}

// SetStdoutFile sets the file the job's stdout is redirected to.
func (job *ExtJob) SetStdoutFile(stdoutFile string) {
	job.stdoutFile = &stdoutFile
}

// SetStderrFile sets the file the job's stderr is redirected to.
func (job *ExtJob) SetStderrFile(stderrFile string) {
	job.stderrFile = &stderrFile
}

// SetStdinFile sets the file the job's stdin is read from.
func (job *ExtJob) SetStdinFile(stdinFile string) {
	job.stdinFile = &stdinFile
}

// AddArg appends one argument. Arguments keep their call order and duplicates
// are kept. The list should *NOT* start with the executable; the driver
// synthesizes argv[0].
func (job *ExtJob) AddArg(arg string) {
	job.argList = append(job.argList, arg)
}

// AddPlatformExe maps a platform tag (e.g. x86_64) to the executable to use
// on that platform. Re-adding a tag replaces the prior path.
func (job *ExtJob) AddPlatformExe(platform, exe string) {
	job.platformExe[platform] = exe
}

// AddEnvironment sets one environment variable for the job. Re-adding a name
// replaces the prior value. Names and values are not validated.
func (job *ExtJob) AddEnvironment(name, value string) {
	job.environment[name] = value
}

// Args returns a copy of the argument list.
func (job *ExtJob) Args() []string {
	args := make([]string, len(job.argList))
	copy(args, job.argList)
	return args
}

// PlatformExe returns a copy of the platform tag to executable mapping.
func (job *ExtJob) PlatformExe() map[string]string {
	exes := make(map[string]string, len(job.platformExe))
	for platform, exe := range job.platformExe {
		exes[platform] = exe
	}
	return exes
}

// Environment returns a copy of the job's environment mapping.
func (job *ExtJob) Environment() map[string]string {
	env := make(map[string]string, len(job.environment))
	for name, value := range job.environment {
		env[name] = value
	}
	return env
}
