package main

import (
	"github.com/alecthomas/kong"

	"github.com/ikormushev/manjabook/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("ManjaBook"), kong.Description("ManjaBook is a recipe and product inventory backend."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
