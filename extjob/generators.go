package extjob

import (
	"fmt"

	"github.com/leanovate/gopter"

	"github.com/eqsim/equeue/testhelpers"
)

// GopterGenExtJob generates random populated jobs for property tests. Each
// optional scalar is present with probability 1/2; arg, environment and
// platform counts are small.
func GopterGenExtJob() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		job := genExtJobFromParams(genParams)
		return gopter.NewGenResult(job, gopter.NoShrinker)
	}
}

func genExtJobFromParams(genParams *gopter.GenParameters) *ExtJob {
	rng := genParams.Rng
	job := NewExtJob(rng.Intn(100))

	if rng.Intn(2) == 0 {
		job.SetPortableExe(fmt.Sprintf("/bin/%s", testhelpers.GenRandomAlphaNumericString(rng)))
	}
	if rng.Intn(2) == 0 {
		job.SetInitCode(testhelpers.GenRandomAlphaNumericString(rng))
	}
	if rng.Intn(2) == 0 {
		job.SetTargetFile(fmt.Sprintf("%s.target", testhelpers.GenRandomAlphaNumericString(rng)))
	}
	if rng.Intn(2) == 0 {
		job.SetStdoutFile(fmt.Sprintf("%s.stdout", testhelpers.GenRandomAlphaNumericString(rng)))
	}
	if rng.Intn(2) == 0 {
		job.SetStderrFile(fmt.Sprintf("%s.stderr", testhelpers.GenRandomAlphaNumericString(rng)))
	}
	if rng.Intn(2) == 0 {
		job.SetStdinFile(fmt.Sprintf("%s.stdin", testhelpers.GenRandomAlphaNumericString(rng)))
	}

	numArgs := rng.Intn(5)
	for i := 0; i < numArgs; i++ {
		job.AddArg(fmt.Sprintf("arg%d:%s", i, testhelpers.GenRandomAlphaNumericString(rng)))
	}

	numEnvVars := rng.Intn(5)
	for i := 0; i < numEnvVars; i++ {
		job.AddEnvironment(fmt.Sprintf("ENV%d", i), testhelpers.GenRandomAlphaNumericString(rng))
	}

	numPlatforms := rng.Intn(3)
	for i := 0; i < numPlatforms; i++ {
		job.AddPlatformExe(fmt.Sprintf("platform%d", i), fmt.Sprintf("/exe/%s", testhelpers.GenRandomAlphaNumericString(rng)))
	}

	return job
}
