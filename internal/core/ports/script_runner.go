package ports

import "time"

// RunReport holds the outcome of running a script.
type RunReport struct {
	Script     string
	Actor      string
	Dispatches []DispatchReport
	Elapsed    time.Duration
}

// ScriptRunner defines the contract for executing stored command scripts.
type ScriptRunner interface {
	RunScript(actorRef, name string) (RunReport, error)
	SaveBatch(name, batch string) (bool, error)
	ListScripts() (map[string]int, error)
}
