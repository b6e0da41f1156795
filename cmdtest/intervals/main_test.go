package intervals

import (
	"flag"
	"testing"

	"github.com/vipcxj/intervals/cmd"
	"github.com/vipcxj/intervals/cmdtest"
)

var update = flag.Bool("update", false, "update yaml expectations with results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("intervals", cmd.Execute)
	ts.RunWithUpdate(t, *update)
}
