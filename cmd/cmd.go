/*
Formulacmp CLI - Cobra Command Structure
===========================================

This file implements the Cobra-based command structure for the formula
comparator. The root command launches an interactive REPL; subcommands
provide direct, scriptable access to the same operations (parsing a
formula into a tree, comparing two formulas, listing a formula's
derivation set).
*/

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"formulacmp/config"
	"formulacmp/formula"
	"formulacmp/history"
	"formulacmp/logging"
)

const banner = `
  ╔═╗─┐ ┬┬┌─┐┌┐┌
  ╠═╣┌┴┬┘││ ││││
  ╩ ╩┴ └─┴└─┘┘└┘
`

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "formulacmp",
	Short: "formulacmp - equivalence and derivability for arithmetic expressions",
	Long: colorCyan + banner + colorReset + `
` + colorBold + `formulacmp` + colorReset + ` decides how two arithmetic expressions relate:
  ` + colorGreen + `✓` + colorReset + ` Exact mixed-fraction arithmetic, no floating point
  ` + colorGreen + `✓` + colorReset + ` LaTeX ` + "`" + `\frac{a}{b}` + "`" + ` fractions alongside decimals and symbolic atoms
  ` + colorGreen + `✓` + colorReset + ` Commutation, association, distribution, and doubling rewrites
  ` + colorGreen + `✓` + colorReset + ` A signed step count measuring how many simplifications separate two formulas
  ` + colorGreen + `✓` + colorReset + ` Session history of every comparison run`,
	Run: startREPL,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "formulacmp.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable structured logging")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(deriveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var compareCmd = &cobra.Command{
	Use:   "compare <formula-a> <formula-b>",
	Short: "Compare two formulas and print their signed step count",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runInit()
		printCompareResult(args[0], args[1])
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree <formula>",
	Short: "Parse a formula and print its expression tree id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runInit()
		printTree(args[0])
	},
}

var deriveCmd = &cobra.Command{
	Use:   "derive <formula>",
	Short: "List every tree in a formula's derivation set",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runInit()
		printDerivation(args[0])
	},
}

func runInit() {
	logging.Init(verbose)
	if err := config.Load(configPath); err != nil {
		fmt.Printf(colorYellow+"Warning: failed to load config: %v\n"+colorReset, err)
	}
}

// startREPL launches the interactive session.
func startREPL(cmd *cobra.Command, args []string) {
	runInit()
	scanner := bufio.NewScanner(os.Stdin)

	printWelcome()

	for {
		fmt.Print(colorCyan + "» " + colorReset)

		if !scanner.Scan() {
			fmt.Println(colorYellow + "\nGoodbye!" + colorReset)
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "exit" || input == "quit":
			fmt.Println(colorYellow + "Goodbye!" + colorReset)
			return

		case input == "clear" || input == "cls":
			clearScreen()
			printWelcome()
			continue

		case input == "help":
			printHelp()
			continue

		case input == "history":
			if err := history.ShowHistory(); err != nil {
				fmt.Printf(colorRed+"Error displaying history: %v\n"+colorReset, err)
			}
			continue

		case strings.HasPrefix(input, "tree "):
			printTree(strings.TrimPrefix(input, "tree "))
			continue

		case strings.HasPrefix(input, "derive "):
			printDerivation(strings.TrimPrefix(input, "derive "))
			continue

		case strings.Contains(input, "=="):
			parts := strings.SplitN(input, "==", 2)
			printCompareResult(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
			continue

		default:
			printTree(input)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf(colorRed+"Input error: %v\n"+colorReset, err)
	}
}

func printWelcome() {
	fmt.Println(colorCyan + banner + colorReset)
	fmt.Println(colorBold + "  Formula Equivalence Comparator" + colorReset)
	fmt.Println(colorDim + "  Type 'help' for commands or 'exit' to quit\n" + colorReset)
}

func printHelp() {
	fmt.Println(colorCyan + "╔════════════════════════════════════════════════════════════╗" + colorReset)
	fmt.Println(colorCyan + "║" + colorBold + "                 FORMULACMP COMPARATOR                    " + colorReset + colorCyan + "║" + colorReset)
	fmt.Println(colorCyan + "╚════════════════════════════════════════════════════════════╝" + colorReset)
	fmt.Println()

	fmt.Println(colorYellow + "┌─ BASIC COMMANDS ─────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorGreen+"<expr>"+colorReset, "Parse a formula and print its tree id")
	fmt.Printf("│ %-25s %s\n", colorGreen+"<a> == <b>"+colorReset, "Compare two formulas' signed step count")
	fmt.Printf("│ %-25s %s\n", colorGreen+"tree <expr>"+colorReset, "Parse a formula and print its tree id")
	fmt.Printf("│ %-25s %s\n", colorGreen+"derive <expr>"+colorReset, "List a formula's derivation set")
	fmt.Printf("│ %-25s %s\n", colorGreen+"history"+colorReset, "Display comparison history")
	fmt.Printf("│ %-25s %s\n", colorGreen+"help"+colorReset, "Show this help message")
	fmt.Printf("│ %-25s %s\n", colorGreen+"exit"+colorReset, "Exit the comparator")
	fmt.Println(colorYellow + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorPurple + "┌─ GRAMMAR ─────────────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"Operators:"+colorReset, "+ - * /")
	fmt.Printf("│ %-25s %s\n", colorBold+"Brackets:"+colorReset, "( ) [ ] { }")
	fmt.Printf("│ %-25s %s\n", colorBold+"Fractions:"+colorReset, `\frac{num}{den}, optionally integer-prefixed`)
	fmt.Printf("│ %-25s %s\n", colorBold+"Examples:"+colorReset, `(1+2)*3  ==  9`)
	fmt.Println(colorPurple + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()
}

func clearScreen() {
	fmt.Print("\033[H\033[2J")
}

func printTree(input string) {
	tree, err := formula.GenerateTree(input)
	if err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}
	logging.Log.Info().Str("formula", input).Str("id", tree.ID).Msg("parsed formula")
	fmt.Printf(colorBold+"id: "+colorReset+"%s\n", tree.ID)
}

func printDerivation(input string) {
	trees, err := formula.GenerateTrees(input)
	if err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}
	logging.Log.Info().Str("formula", input).Int("class_size", len(trees)).Msg("derived equivalence class")
	fmt.Printf(colorBold+"%d equivalent trees:\n"+colorReset, len(trees))
	for _, t := range trees {
		fmt.Printf("  %s\n", t.ID)
	}
}

func printCompareResult(a, b string) {
	n, ok := formula.CompareFormulas(a, b)
	if !ok {
		fmt.Println(colorYellow + "unrelated" + colorReset)
		logging.Log.Info().Str("a", a).Str("b", b).Msg("comparison unrelated")
		if err := history.AddHistory(a, b, 0, false); err != nil {
			fmt.Printf(colorYellow+"Warning: failed to save to history: %v\n"+colorReset, err)
		}
		return
	}

	fmt.Printf(colorBold+"Result: "+colorReset+"%s\n", formatVerdict(n))
	logging.Log.Info().Str("a", a).Str("b", b).Int("result", n).Msg("comparison related")
	if err := history.AddHistory(a, b, n, true); err != nil {
		fmt.Printf(colorYellow+"Warning: failed to save to history: %v\n"+colorReset, err)
	}
}

func formatVerdict(n int) string {
	switch {
	case n == 0:
		return colorGreen + "equal (0)" + colorReset
	case n > 0:
		return colorGreen + strconv.Itoa(n) + colorReset + " steps (a reduces to b)"
	default:
		return colorGreen + strconv.Itoa(n) + colorReset + " steps (b reduces to a)"
	}
}
