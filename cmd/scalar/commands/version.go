package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// NewVersionCommand returns a cli.Command for "scalar version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows Scalar and Scalar CLI version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var cliVersion, libVersion string
			info, ok := debug.ReadBuildInfo()

			if !ok {
				fmt.Println(`version not available in GOPATH mode; use "go get" with Go modules enabled`)
				return nil
			}

			cliVersion = info.Main.Version
			for _, mod := range info.Deps {
				if mod.Path != "github.com/chaisql/scalar" {
					continue
				}
				// if a replace directive is set, Scalar is in development mode
				if mod.Replace != nil {
					libVersion = "(devel)"
					break
				}
				libVersion = mod.Version
				break
			}
			fmt.Printf("Scalar %v\nScalar CLI %v\n", libVersion, cliVersion)
			return nil
		},
	}
}
