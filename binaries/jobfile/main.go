package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/eqsim/equeue/extjob"
	"github.com/eqsim/equeue/joblist"
)

// Binary to write an example jobList file for the queue driver.
func main() {
	out := flag.String("out", "jobList.py", "path of the jobList file to write")
	flag.Parse()

	eclipse := extjob.NewExtJob(1)
	eclipse.AddPlatformExe("x86_64", "/local/eclipse/Geoquest/2006.2/bin/linux_x86_64/eclipse.exe")
	eclipse.AddPlatformExe("ia64", "/local/eclipse/Geoquest/2006.2/bin/linux_ia64/eclipse.exe")
	eclipse.AddEnvironment("LM_LICENSE_FILE", "1700@osl001lic.hda.hydro.com")
	eclipse.AddEnvironment("F_UFMTENDIAN", "big")
	eclipse.SetInitCode(`os.symlink(\"/local/eclipse/macros/ECL.CFG\" , \"ECL.CFG\")`)
	eclipse.SetTargetFile("ECLIPSE.UNSMRY")
	eclipse.SetStdoutFile("eclipse.stdout")
	eclipse.SetStderrFile("eclipse.stderr")
	eclipse.SetStdinFile("eclipse.stdin")

	jl := joblist.New()
	jl.Add("ECLIPSE", eclipse)
	if err := jl.WriteFile(*out); err != nil {
		log.Fatal("error writing jobList file ", err)
	}
}
