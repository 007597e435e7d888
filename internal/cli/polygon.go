package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askern/polycipher/pkg/cipher"
	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/geometry"
	"github.com/askern/polycipher/pkg/observability"
)

// newPolygonCmd creates the polygon command.
func newPolygonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "polygon <x,y;x,y;...>",
		Short: "Validate polygon vertices and show derived cipher keys",
		Long: `Validate polygon vertices and show derived cipher keys.

Vertices are x,y pairs separated by semicolons, in drawing order:

  polycipher polygon "0,0;300,0;0,400"

A valid polygon reports its geometry (area, convexity, side-length spread)
and the cipher keys a polygon node would derive from it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vertices, err := parseVertices(args[0])
			if err != nil {
				return err
			}

			result := geometry.Validate(vertices)
			if !result.Valid {
				observability.Engine().OnPolygonRejected(cmd.Context(), result.Reason)
				printError("invalid polygon: %s", result.Reason)
				return errors.New(errors.ErrCodeInvalidPolygon, "%s", result.Reason)
			}

			analysis := geometry.Analyze(vertices)
			printSuccess("valid polygon")
			printKeyValue("sides", fmt.Sprintf("%d", analysis.Sides))
			printKeyValue("convex", fmt.Sprintf("%t", analysis.Convex))
			printKeyValue("area", fmt.Sprintf("%.1f", analysis.Area))
			printKeyValue("variance", fmt.Sprintf("%.2f", analysis.SideVariance))
			printKeyValue("side lengths", formatLengths(analysis.SideLengths))

			node := cipher.NewPolygon(vertices)
			fmt.Println()
			printKeyValue("shift key", fmt.Sprintf("%d", node.ShiftKey()))
			if key, ok := node.MultiplyKey(); ok {
				printKeyValue("multiply key", fmt.Sprintf("%d", key))
			} else {
				printDetail("concave polygon: no multiply stage")
			}
			printDetail("%s", node.Describe())
			return nil
		},
	}
	return cmd
}

func formatLengths(lengths []float64) string {
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = fmt.Sprintf("%.1f", l)
	}
	return strings.Join(parts, ", ")
}
