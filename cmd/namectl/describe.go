package main

import (
	"github.com/spf13/cobra"

	"github.com/na2na-p/compoundname/internal/handler/dto"
	"github.com/na2na-p/compoundname/internal/usecase"
)

type describeOptions struct {
	delimiter      string
	source         string
	representation string
}

func newDescribeCmd() *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe [components...]",
		Short: "Describe a name built from components or from a masked string",
		Example: `  namectl describe oss cs fau de
  namectl describe --source 'oss\.cs.de' --representation string`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := usecase.NewNameUseCase(usecase.RepresentationArray)
			if err != nil {
				return err
			}

			in := usecase.NameInput{
				Components:     args,
				Delimiter:      opts.delimiter,
				Representation: opts.representation,
			}
			if cmd.Flags().Changed("source") {
				in.Source = &opts.source
			}

			desc, err := uc.Describe(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.NewNameResponseDTO(desc))
		},
	}

	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "", "delimiter character (default \".\")")
	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "masked string to parse instead of positional components")
	cmd.Flags().StringVarP(&opts.representation, "representation", "r", "", "name representation: array or string")
	return cmd
}
