package cmd

import (
	"io"
	"log"
	"time"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/usecase/generate"
)

// GenerateMain is wrapped by NewGenerateCommand and only exported for testing
// purposes.
var GenerateMain *generate.Main

// NewGenerateCommand returns a new cobra command wrapping GenerateMain.
func NewGenerateCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	GenerateMain = generate.NewMain()
	generateCommand := &cobra.Command{
		Use:   "generate",
		Short: "Generate the e-commerce dataset and write it as JSON files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = GenerateMain.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := generateCommand.Flags()
	err = commandeer.Flags(flags, GenerateMain)
	if err != nil {
		panic(err)
	}
	return generateCommand
}

func init() {
	subcommandFns["generate"] = NewGenerateCommand
}
