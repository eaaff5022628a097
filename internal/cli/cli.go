// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Pubzeee/nasikoai/internal/assemble"
	"github.com/Pubzeee/nasikoai/internal/clipboard"
	"github.com/Pubzeee/nasikoai/internal/config"
	"github.com/Pubzeee/nasikoai/internal/llm"
	"github.com/Pubzeee/nasikoai/internal/scan"
	"github.com/Pubzeee/nasikoai/internal/tokenizer"
	"github.com/Pubzeee/nasikoai/internal/tree"
	"github.com/Pubzeee/nasikoai/internal/types"
	"github.com/Pubzeee/nasikoai/internal/utils"
)

const (
	dryRunFlagName   = "dry-run"
	maxCharsFlagName = "max-chars"
	modelFlagName    = "model"
	copyFlagName     = "copy"
	versionFlagName  = "version"
	versionTemplate  = "nasikoai version: %s\n"

	rootUse              = "nasikoai"
	rootShortDescription = "nasikoai command line interface"
	rootLongDescription  = `nasikoai scans a project directory, assembles a digest of its structure and
file contents, and asks the Gemini API to write a README for it.
The generated markdown is printed to standard output; redirect it to persist.`

	generateUse              = "generate <directory>"
	generateAlias            = "g"
	generateShortDescription = "generate a README for a project directory (" + generateAlias + ")"
	generateLongDescription  = `Scan the given directory, build the generation context, and print the
README produced by the model. Use --dry-run to inspect the context without
contacting the API.`
	generateUsageExample = `  # Generate a README and persist it
  nasikoai generate ./myproject > README.md

  # Preview what would be sent without calling the API
  nasikoai generate ./myproject --dry-run

  # Tighten the per-file character budget
  nasikoai generate ./myproject --max-chars 2000`

	dryRunFlagDescription   = "build the context and print a preview without calling the API"
	maxCharsFlagDescription = "maximum characters read per file"
	modelFlagDescription    = "generation model to use"
	copyFlagDescription     = "copy the generated README to the clipboard"
	versionFlagDescription  = "display application version"

	contextPreviewLimit = 1000

	errorDirectoryMissingFormat = "directory '%s' does not exist"
	errorNotDirectoryFormat     = "path '%s' is not a directory"
	errorStatFormat             = "stat failed for '%s': %w"

	noValidFilesMessage = "Error: No valid files found in the directory. Cannot generate README."

	dryRunHeaderLine      = "[DRY RUN] No request was sent."
	dryRunFilesFormat     = "Files scanned: %d\n"
	dryRunCharsFormat     = "Context size: %d characters (~%s)\n"
	dryRunTokensFormat    = "Estimated tokens: %d (%s)\n"
	dryRunPreviewHeader   = "Context preview:"
	dryRunPreviewEllipsis = "..."

	contextReadyMessage      = "assembled generation context"
	clipboardCopiedMessage   = "copied generated README to clipboard"
	clipboardFailedMessage   = "failed to copy generated README to clipboard"
	tokenEstimateFailMessage = "token estimate unavailable"
)

// newGenerationClient constructs the client used for real runs. Tests replace
// it to count calls without touching the network.
var newGenerationClient = func(ctx context.Context) (llm.Client, error) {
	return llm.NewRealClient(ctx)
}

// clipboardCopier places generated output on the system clipboard.
var clipboardCopier clipboard.Copier = clipboard.NewSystemCopier()

// Execute runs the nasikoai application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(createGenerateCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// generateOptions stores flag values for the generate command.
type generateOptions struct {
	dryRun          bool
	maxCharsPerFile int
	modelName       string
	copyToClipboard bool
	maxCharsFlagSet bool
	modelFlagSet    bool
}

// createGenerateCommand returns the generate subcommand.
func createGenerateCommand() *cobra.Command {
	var options generateOptions

	generateCommand := &cobra.Command{
		Use:     generateUse,
		Aliases: []string{generateAlias},
		Short:   generateShortDescription,
		Long:    generateLongDescription,
		Example: generateUsageExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			options.maxCharsFlagSet = command.Flags().Changed(maxCharsFlagName)
			options.modelFlagSet = command.Flags().Changed(modelFlagName)
			return runGenerate(command, arguments[0], options)
		},
	}

	generateCommand.Flags().BoolVar(&options.dryRun, dryRunFlagName, false, dryRunFlagDescription)
	generateCommand.Flags().IntVar(&options.maxCharsPerFile, maxCharsFlagName, config.DefaultMaxCharsPerFile, maxCharsFlagDescription)
	generateCommand.Flags().StringVar(&options.modelName, modelFlagName, config.DefaultModelName, modelFlagDescription)
	generateCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	return generateCommand
}

// runGenerate executes the full pipeline for a single directory.
func runGenerate(command *cobra.Command, directoryPath string, options generateOptions) error {
	directoryInformation, statError := os.Stat(directoryPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(errorDirectoryMissingFormat, directoryPath)
		}
		return fmt.Errorf(errorStatFormat, directoryPath, statError)
	}
	if !directoryInformation.IsDir() {
		return fmt.Errorf(errorNotDirectoryFormat, directoryPath)
	}

	applicationLogger, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		return fmt.Errorf("initialize logger: %w", loggerError)
	}
	defer applicationLogger.Sync()

	settings, settingsError := config.Load(directoryPath)
	if settingsError != nil {
		return settingsError
	}
	if options.maxCharsFlagSet {
		settings.MaxCharsPerFile = options.maxCharsPerFile
	}
	if options.modelFlagSet {
		settings.ModelName = options.modelName
	}

	scanner := scan.NewScanner(settings, applicationLogger)
	renderer := tree.NewRenderer(settings, applicationLogger)

	projectContext := types.ProjectContext{
		Tree:  renderer.Render(directoryPath),
		Files: scanner.Scan(directoryPath),
	}

	if len(projectContext.Files) == 0 {
		fmt.Fprintln(command.OutOrStdout(), noValidFilesMessage)
		return nil
	}

	assembledContext := assemble.BuildContext(projectContext)
	estimatedTokens, tokenizerName := estimateTokens(settings.ModelName, assembledContext, applicationLogger)

	applicationLogger.Info(contextReadyMessage,
		zap.Int("files", len(projectContext.Files)),
		zap.Int("characters", len(assembledContext)),
		zap.Int("tokens", estimatedTokens))

	if options.dryRun {
		printDryRunPreview(command, assembledContext, len(projectContext.Files), estimatedTokens, tokenizerName)
		return nil
	}

	generationClient, clientError := newGenerationClient(command.Context())
	if clientError != nil {
		return clientError
	}

	cooldown := time.Duration(settings.CooldownSeconds) * time.Second
	generator := llm.NewGenerator(generationClient, settings.ModelName, cooldown, applicationLogger)
	generatedText := generator.Generate(command.Context(), assembledContext)
	fmt.Fprintln(command.OutOrStdout(), generatedText)

	if options.copyToClipboard {
		if copyError := clipboardCopier.Copy(generatedText); copyError != nil {
			applicationLogger.Warn(clipboardFailedMessage, zap.Error(copyError))
		} else {
			applicationLogger.Info(clipboardCopiedMessage)
		}
	}
	return nil
}

// estimateTokens returns an approximate token count of the context. The
// estimate is informational only, so failures degrade to zero with a warning.
func estimateTokens(modelName string, assembledContext string, logger *zap.Logger) (int, string) {
	counter, counterError := tokenizer.NewCounter(modelName)
	if counterError != nil {
		logger.Warn(tokenEstimateFailMessage, zap.Error(counterError))
		return 0, ""
	}
	tokenCount, countError := counter.CountString(assembledContext)
	if countError != nil {
		logger.Warn(tokenEstimateFailMessage, zap.Error(countError))
		return 0, counter.Name()
	}
	return tokenCount, counter.Name()
}

// printDryRunPreview writes the scan summary and a context prefix to stdout.
func printDryRunPreview(command *cobra.Command, assembledContext string, fileCount int, estimatedTokens int, tokenizerName string) {
	outputWriter := command.OutOrStdout()
	fmt.Fprintln(outputWriter, dryRunHeaderLine)
	fmt.Fprintf(outputWriter, dryRunFilesFormat, fileCount)
	fmt.Fprintf(outputWriter, dryRunCharsFormat, len(assembledContext), utils.FormatCharCount(int64(len(assembledContext))))
	if tokenizerName != "" {
		fmt.Fprintf(outputWriter, dryRunTokensFormat, estimatedTokens, tokenizerName)
	}
	fmt.Fprintln(outputWriter)
	fmt.Fprintln(outputWriter, dryRunPreviewHeader)
	previewRunes := []rune(assembledContext)
	if len(previewRunes) > contextPreviewLimit {
		fmt.Fprintln(outputWriter, string(previewRunes[:contextPreviewLimit])+dryRunPreviewEllipsis)
	} else {
		fmt.Fprintln(outputWriter, assembledContext)
	}
}
