/*
Package actor defines the participant on whose behalf a command is simulated.
*/
package actor

import "fmt"

/*
Actor is an opaque handle for a connected player or a synthetic bot.
*/
type Actor struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Bot  bool   `yaml:"bot"`
}

// String returns a short display form such as "bot1 (#3)".
func (a Actor) String() string {
	return fmt.Sprintf("%s (#%d)", a.Name, a.ID)
}
