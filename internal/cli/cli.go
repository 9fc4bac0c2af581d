// Package cli provides the command line interface.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/temirov/copyctx/internal/commands"
	"github.com/temirov/copyctx/internal/config"
	"github.com/temirov/copyctx/internal/gateway"
	"github.com/temirov/copyctx/internal/ports"
	"github.com/temirov/copyctx/internal/services/clipboard"
	"github.com/temirov/copyctx/internal/tokenizer"
	"github.com/temirov/copyctx/internal/types"
	"github.com/temirov/copyctx/internal/utils"
)

const (
	configFlagName           = "config"
	rootFlagName             = "root"
	projectFlagName          = "project"
	exclusionFlagName        = "e"
	noGitignoreFlagName      = "no-gitignore"
	includeGitFlagName       = "git"
	limitFlagName            = "limit"
	noLimitFlagName          = "no-limit"
	maxSizeFlagName          = "max-size"
	filterFlagName           = "filter"
	filesFromFlagName        = "files-from"
	bufferFlagName           = "buffer"
	stdoutFlagName           = "stdout"
	formatFlagName           = "format"
	timeoutFlagName          = "timeout"
	verboseFlagName          = "verbose"
	quietFlagName            = "quiet"
	versionFlagName          = "version"
	headerFlagName           = "header"
	footerFlagName           = "footer"
	preTextFlagName          = "pre"
	postTextFlagName         = "post"
	blankLineFlagName        = "blank-line"
	preferOpenBufferFlagName = "prefer-open-buffer"
	tokensFlagName           = "tokens"
	modelFlagName            = "model"
	globalFlagName           = "global"
	forceFlagName            = "force"

	formatRaw                 = "raw"
	formatJSON                = "json"
	defaultPath               = "."
	defaultTokenizerModelName = "gpt-4o"
	versionTemplate           = "copyctx version: %s\n"

	rootUse              = "copyctx"
	rootShortDescription = "copyctx command line interface"
	rootLongDescription  = `copyctx gathers files and folders into one formatted text block for pasting into an LLM chat.
The content command copies file contents framed by header and footer templates.
The structure command copies only the directory tree of the collected files.
Text goes to the system clipboard unless --stdout or --format json is given.`
	contentUse                = "content [paths...]"
	structureUse              = "structure [paths...]"
	initUse                   = "init"
	contentAlias              = "c"
	structureAlias            = "s"
	contentShortDescription   = "copy file contents (" + contentAlias + ")"
	structureShortDescription = "copy the directory structure (" + structureAlias + ")"
	initShortDescription      = "write the default configuration file"

	// contentLongDescription provides detailed help for the content command.
	contentLongDescription = `Collect the files below the given paths and copy their contents.
Templates accept the placeholders $PROJECT_NAME, $FILE_PATH, and $DIRECTORY_STRUCTURE.`
	// contentUsageExample demonstrates content command usage.
	contentUsageExample = `  # Copy every Go file of the project
  copyctx content --filter .go .

  # Print instead of copying, with a custom header
  copyctx c --stdout --header '// $FILE_PATH' src`

	// structureLongDescription provides detailed help for the structure command.
	structureLongDescription = `Collect the files below the given paths and copy the rendered directory tree.`
	// structureUsageExample demonstrates structure command usage.
	structureUsageExample = `  # Copy the tree of the current project
  copyctx structure

  # Print the tree as JSON
  copyctx s --format json ./internal`

	initLongDescription = `Write the default configuration to ./.copyctx.yaml, or to ~/.copyctx/.copyctx.yaml with --global.`

	configFlagDescription           = "configuration file used instead of ./" + utils.ConfigFileName
	rootFlagDescription             = "project root for relative paths (default: git work tree root or working directory)"
	projectFlagDescription          = "project name substituted for $PROJECT_NAME"
	exclusionFlagDescription        = "exclude path pattern"
	disableGitignoreFlagDescription = "do not use .gitignore"
	includeGitFlagDescription       = "include git directory"
	limitFlagDescription            = "maximum number of files to collect"
	noLimitFlagDescription          = "do not enforce the file count limit"
	maxSizeFlagDescription          = "maximum file size in KB"
	filterFlagDescription           = "only collect files whose name ends with this suffix"
	filesFromFlagDescription        = "read additional paths, one per line, from this file (- for stdin)"
	bufferFlagDescription           = "use the content of file in place of path (path=file)"
	stdoutFlagDescription           = "print the text instead of copying it to the clipboard"
	formatFlagDescription           = "output format for --stdout: raw or json"
	timeoutFlagDescription          = "abort the copy after this duration"
	verboseFlagDescription          = "log every collected and skipped file"
	quietFlagDescription            = "do not print the copy summary"
	versionFlagDescription          = "display application version"
	headerFlagDescription           = "header template written before each file"
	footerFlagDescription           = "footer template written after each file"
	preTextFlagDescription          = "text written before everything else"
	postTextFlagDescription         = "text written after everything else"
	blankLineFlagDescription        = "insert a blank line after each file"
	preferOpenBufferFlagDescription = "use --buffer content only for open buffers"
	tokensFlagDescription           = "also count model tokens"
	modelFlagDescription            = "tokenizer model to use for token counting"
	globalFlagDescription           = "write the global configuration"
	forceFlagDescription            = "overwrite an existing configuration"

	invalidFormatMessage        = "Invalid format value '%s'"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	errorPathMissingFormat      = "path '%s' does not exist"
	errorFilesFromFormat        = "read paths from %s: %w"
	errorCopyInterruptedFormat  = "copy interrupted: %w"
	errorNoValidPaths           = "no valid paths"
	errorInteractiveListFormat  = "--%s %s expects a path list piped on standard input"
	configurationWrittenFormat  = "Configuration written to %s\n"
	emptyCopyWarning            = "No files were copied."
	filesFromStandardInput      = "-"
)

// Execute runs the copyctx application.
func Execute() error {
	rootCommand := createRootCommand(newEnvironment())
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// environment holds the process collaborators a command run depends on.
type environment struct {
	workingDirectory func() (string, error)
	clipboardSink    ports.ClipboardSink
	newLogger        func(verbose bool) (*zap.Logger, error)
}

func newEnvironment() environment {
	return environment{
		workingDirectory: os.Getwd,
		clipboardSink:    clipboard.NewService(),
		newLogger:        utils.NewApplicationLogger,
	}
}

// sharedOptions stores the flags accepted by both copy commands.
type sharedOptions struct {
	configPath            string
	projectRoot           string
	projectName           string
	exclusionPatterns     []string
	disableGitignore      bool
	includeGit            bool
	fileCountLimit        int
	disableFileCountLimit bool
	maxFileSizeKB         int
	filenameFilters       []string
	filesFrom             string
	bufferAssignments     []string
	stdout                bool
	format                string
	timeout               time.Duration
	verbose               bool
	quiet                 bool
}

// templateOptions stores the template flags of a copy command.
type templateOptions struct {
	header           string
	footer           string
	preText          string
	postText         string
	blankLine        bool
	preferOpenBuffer bool
	tokens           bool
	model            string
}

// createRootCommand builds the root Cobra command.
func createRootCommand(env environment) *cobra.Command {
	var showVersion bool
	var shared sharedOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				_, printError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return printError
			}
			return command.Help()
		},
	}
	persistentFlags := rootCommand.PersistentFlags()
	registerBooleanFlag(persistentFlags, &showVersion, versionFlagName, false, versionFlagDescription)
	persistentFlags.StringVar(&shared.configPath, configFlagName, "", configFlagDescription)
	persistentFlags.StringVar(&shared.projectRoot, rootFlagName, "", rootFlagDescription)
	persistentFlags.StringVar(&shared.projectName, projectFlagName, "", projectFlagDescription)
	persistentFlags.StringArrayVarP(&shared.exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	registerBooleanFlag(persistentFlags, &shared.disableGitignore, noGitignoreFlagName, false, disableGitignoreFlagDescription)
	registerBooleanFlag(persistentFlags, &shared.includeGit, includeGitFlagName, false, includeGitFlagDescription)
	persistentFlags.IntVar(&shared.fileCountLimit, limitFlagName, types.DefaultFileCountLimit, limitFlagDescription)
	registerBooleanFlag(persistentFlags, &shared.disableFileCountLimit, noLimitFlagName, false, noLimitFlagDescription)
	persistentFlags.IntVar(&shared.maxFileSizeKB, maxSizeFlagName, types.DefaultMaxFileSizeKB, maxSizeFlagDescription)
	persistentFlags.StringArrayVar(&shared.filenameFilters, filterFlagName, nil, filterFlagDescription)
	persistentFlags.StringVar(&shared.filesFrom, filesFromFlagName, "", filesFromFlagDescription)
	persistentFlags.StringArrayVar(&shared.bufferAssignments, bufferFlagName, nil, bufferFlagDescription)
	registerBooleanFlag(persistentFlags, &shared.stdout, stdoutFlagName, false, stdoutFlagDescription)
	persistentFlags.StringVar(&shared.format, formatFlagName, formatRaw, formatFlagDescription)
	persistentFlags.DurationVar(&shared.timeout, timeoutFlagName, 0, timeoutFlagDescription)
	registerBooleanFlag(persistentFlags, &shared.verbose, verboseFlagName, false, verboseFlagDescription)
	registerBooleanFlag(persistentFlags, &shared.quiet, quietFlagName, false, quietFlagDescription)

	rootCommand.AddCommand(
		createContentCommand(env, &shared),
		createStructureCommand(env, &shared),
		createInitCommand(env),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createContentCommand returns the content subcommand.
func createContentCommand(env environment, shared *sharedOptions) *cobra.Command {
	var templates templateOptions

	contentCommand := &cobra.Command{
		Use:     contentUse,
		Aliases: []string{contentAlias},
		Short:   contentShortDescription,
		Long:    contentLongDescription,
		Example: contentUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runCopyCommand(command, env, types.CommandContent, arguments, *shared, templates)
		},
	}

	flags := contentCommand.Flags()
	flags.StringVar(&templates.header, headerFlagName, types.DefaultHeaderTemplate, headerFlagDescription)
	flags.StringVar(&templates.footer, footerFlagName, types.DefaultFooterTemplate, footerFlagDescription)
	flags.StringVar(&templates.preText, preTextFlagName, types.DefaultPreTextTemplate, preTextFlagDescription)
	flags.StringVar(&templates.postText, postTextFlagName, types.DefaultPostTextTemplate, postTextFlagDescription)
	registerBooleanFlag(flags, &templates.blankLine, blankLineFlagName, true, blankLineFlagDescription)
	registerBooleanFlag(flags, &templates.preferOpenBuffer, preferOpenBufferFlagName, true, preferOpenBufferFlagDescription)
	registerBooleanFlag(flags, &templates.tokens, tokensFlagName, false, tokensFlagDescription)
	flags.StringVar(&templates.model, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	return contentCommand
}

// createStructureCommand returns the structure subcommand.
func createStructureCommand(env environment, shared *sharedOptions) *cobra.Command {
	var templates templateOptions

	structureCommand := &cobra.Command{
		Use:     structureUse,
		Aliases: []string{structureAlias},
		Short:   structureShortDescription,
		Long:    structureLongDescription,
		Example: structureUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runCopyCommand(command, env, types.CommandStructure, arguments, *shared, templates)
		},
	}

	flags := structureCommand.Flags()
	flags.StringVar(&templates.preText, preTextFlagName, types.DefaultStructurePreText, preTextFlagDescription)
	flags.StringVar(&templates.postText, postTextFlagName, types.DefaultStructurePostText, postTextFlagDescription)
	return structureCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand(env environment) *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := env.workingDirectory()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: workingDirectory,
			})
			if initError != nil {
				return initError
			}
			_, printError := fmt.Fprintf(command.OutOrStdout(), configurationWrittenFormat, destinationPath)
			return printError
		},
	}
	registerBooleanFlag(initCommand.Flags(), &global, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runCopyCommand executes the content or structure command for the given paths.
func runCopyCommand(command *cobra.Command, env environment, commandName string, arguments []string, shared sharedOptions, templates templateOptions) error {
	workingDirectory, workingDirectoryError := env.workingDirectory()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: shared.configPath,
	})
	if configurationError != nil {
		return configurationError
	}
	applyFlagOverrides(command, &configuration, shared, templates)

	format := formatRaw
	if configuration.Common.Format != "" {
		format = strings.ToLower(configuration.Common.Format)
	}
	if format != formatRaw && format != formatJSON {
		return fmt.Errorf(invalidFormatMessage, format)
	}

	loggerInstance, loggerError := env.newLogger(shared.verbose)
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	defer func() {
		_ = loggerInstance.Sync()
	}()
	engineLogger := utils.NewZapLogger(loggerInstance)

	ctx, stop := signal.NotifyContext(commandContext(command), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if shared.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, shared.timeout)
		defer cancel()
	}

	run, runError := prepareCopyRun(ctx, command, workingDirectory, configuration, shared, engineLogger, arguments)
	if runError != nil {
		return runError
	}

	sink := env.clipboardSink
	writeToStdout := format == formatJSON || (configuration.Common.Stdout != nil && *configuration.Common.Stdout)
	if writeToStdout {
		sink = clipboard.NewWriterSink(command.OutOrStdout())
	}
	notify := configuration.Common.ShowCopyNotification == nil || *configuration.Common.ShowCopyNotification
	if shared.quiet {
		notify = false
	}
	reporter := copyReporter{
		sink:           sink,
		format:         format,
		notifications:  command.ErrOrStderr(),
		notify:         notify,
		logger:         loggerInstance,
		fileCountLimit: run.collectionLimit,
	}

	switch commandName {
	case types.CommandStructure:
		structureOptions := configuration.StructureOptions()
		structureOptions.ProjectName = run.projectName
		// respect_gitignore is applied by the gateway's ignore evaluator; .ignore and -e rules always apply.
		structureOptions.RespectIgnoreRules = true
		result, asyncError := runAsync(ctx, func() types.StructureResult {
			return run.orchestrator.CopyDirectoryStructure(run.roots, structureOptions)
		})
		if asyncError != nil {
			return asyncError
		}
		return reporter.reportStructure(result)
	default:
		copyOptions := configuration.CopyOptions()
		copyOptions.ProjectName = run.projectName
		// respect_gitignore is applied by the gateway's ignore evaluator; .ignore and -e rules always apply.
		copyOptions.RespectIgnoreRules = true
		if tokenError := attachTokenCounter(run.orchestrator, configuration.Content.Tokens); tokenError != nil {
			return tokenError
		}
		result, asyncError := runAsync(ctx, func() types.CopyResult {
			return run.orchestrator.CopyFileContents(run.roots, copyOptions)
		})
		if asyncError != nil {
			return asyncError
		}
		return reporter.reportContent(result)
	}
}

// copyRun holds the collaborators resolved for one copy command.
type copyRun struct {
	orchestrator    *commands.CopyOrchestrator
	roots           []types.FileReference
	projectName     string
	collectionLimit int
}

func prepareCopyRun(ctx context.Context, command *cobra.Command, workingDirectory string, configuration config.ApplicationConfiguration, shared sharedOptions, logger ports.Logger, arguments []string) (copyRun, error) {
	projectRoot, rootError := gateway.ResolveProjectRoot(workingDirectory, shared.projectRoot)
	if rootError != nil {
		return copyRun{}, rootError
	}
	collectionOptions := configuration.Common.CollectionOptions()
	ignoreEvaluator, ignoreError := gateway.NewIgnoreEvaluator(projectRoot, gateway.IgnoreOptions{
		ExclusionPatterns: configuration.Common.Exclude,
		IncludeGit:        configuration.Common.IncludeGit != nil && *configuration.Common.IncludeGit,
		DisableGitIgnore:  !collectionOptions.RespectIgnoreRules,
	})
	if ignoreError != nil {
		return copyRun{}, ignoreError
	}
	buffers, bufferError := gateway.LoadBufferAssignments(shared.bufferAssignments)
	if bufferError != nil {
		return copyRun{}, bufferError
	}
	fileSystemGateway, gatewayError := gateway.NewFileSystemGateway(ctx, gateway.Options{
		ProjectRoot: projectRoot,
		Logger:      logger,
		Buffers:     buffers,
		Ignore:      ignoreEvaluator,
	})
	if gatewayError != nil {
		return copyRun{}, gatewayError
	}

	paths, pathsError := collectInputPaths(command.InOrStdin(), arguments, shared.filesFrom)
	if pathsError != nil {
		return copyRun{}, pathsError
	}
	roots, rootsError := resolveRoots(fileSystemGateway, workingDirectory, paths)
	if rootsError != nil {
		return copyRun{}, rootsError
	}

	return copyRun{
		orchestrator:    commands.NewCopyOrchestrator(fileSystemGateway, logger),
		roots:           roots,
		projectName:     gateway.ProjectName(projectRoot, configuration.Common.ProjectName),
		collectionLimit: collectionOptions.FileCountLimit,
	}, nil
}

// applyFlagOverrides writes every explicitly set flag over the loaded configuration.
func applyFlagOverrides(command *cobra.Command, configuration *config.ApplicationConfiguration, shared sharedOptions, templates templateOptions) {
	flags := command.Flags()
	common := &configuration.Common
	if flags.Changed(projectFlagName) {
		common.ProjectName = shared.projectName
	}
	if len(shared.exclusionPatterns) > 0 {
		common.Exclude = utils.DeduplicatePatterns(append(append([]string{}, common.Exclude...), shared.exclusionPatterns...))
	}
	if flags.Changed(noGitignoreFlagName) {
		common.RespectGitIgnore = boolValue(!shared.disableGitignore)
	}
	if flags.Changed(includeGitFlagName) {
		common.IncludeGit = boolValue(shared.includeGit)
	}
	if flags.Changed(limitFlagName) {
		common.FileCountLimit = intValue(shared.fileCountLimit)
		common.SetMaxFileCount = boolValue(true)
	}
	if flags.Changed(noLimitFlagName) {
		common.SetMaxFileCount = boolValue(!shared.disableFileCountLimit)
	}
	if flags.Changed(maxSizeFlagName) {
		common.MaxFileSizeKB = intValue(shared.maxFileSizeKB)
	}
	if len(shared.filenameFilters) > 0 {
		common.FilenameFilters = utils.DeduplicatePatterns(shared.filenameFilters)
		common.UseFilenameFilters = boolValue(true)
	}
	if flags.Changed(stdoutFlagName) {
		common.Stdout = boolValue(shared.stdout)
	}
	if flags.Changed(formatFlagName) {
		common.Format = shared.format
	}
	if flags.Changed(preferOpenBufferFlagName) {
		common.StrictMemoryRead = boolValue(templates.preferOpenBuffer)
	}

	if command.Name() == types.CommandStructure {
		if flags.Changed(preTextFlagName) {
			configuration.Structure.PreText = stringValue(templates.preText)
		}
		if flags.Changed(postTextFlagName) {
			configuration.Structure.PostText = stringValue(templates.postText)
		}
		return
	}

	content := &configuration.Content
	if flags.Changed(headerFlagName) {
		content.HeaderFormat = stringValue(templates.header)
	}
	if flags.Changed(footerFlagName) {
		content.FooterFormat = stringValue(templates.footer)
	}
	if flags.Changed(preTextFlagName) {
		content.PreText = stringValue(templates.preText)
	}
	if flags.Changed(postTextFlagName) {
		content.PostText = stringValue(templates.postText)
	}
	if flags.Changed(blankLineFlagName) {
		content.AddExtraLineBetweenFiles = boolValue(templates.blankLine)
	}
	if flags.Changed(tokensFlagName) {
		content.Tokens.Enabled = boolValue(templates.tokens)
	}
	if flags.Changed(modelFlagName) {
		content.Tokens.Model = templates.model
	}
}

func attachTokenCounter(orchestrator *commands.CopyOrchestrator, tokens config.TokenConfiguration) error {
	if tokens.Enabled == nil || !*tokens.Enabled {
		return nil
	}
	model := tokens.Model
	if model == "" {
		model = defaultTokenizerModelName
	}
	counter, resolvedModel, counterError := tokenizer.NewCounter(tokenizer.Config{Model: model})
	if counterError != nil {
		return counterError
	}
	orchestrator.TokenCounter = counter
	orchestrator.TokenModel = resolvedModel
	return nil
}

// runAsync runs work in one errgroup goroutine while a second one waits for its result or
// for ctx to end. An ended ctx fails the run at once; work that is still blocked on the
// file system keeps running in the background and its result is dropped.
func runAsync[T any](ctx context.Context, work func() T) (T, error) {
	var result T
	completed := make(chan T, 1)
	interrupted := make(chan error, 1)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		completed <- work()
		return nil
	})

	group.Go(func() error {
		select {
		case <-groupCtx.Done():
			interruptError := fmt.Errorf(errorCopyInterruptedFormat, groupCtx.Err())
			interrupted <- interruptError
			return interruptError
		case result = <-completed:
			return nil
		}
	})

	waitErrors := make(chan error, 1)
	go func() {
		waitErrors <- group.Wait()
	}()

	var zero T
	select {
	case interruptError := <-interrupted:
		return zero, interruptError
	case waitError := <-waitErrors:
		if waitError != nil {
			return zero, waitError
		}
		if ctxError := ctx.Err(); ctxError != nil {
			return zero, fmt.Errorf(errorCopyInterruptedFormat, ctxError)
		}
		return result, nil
	}
}

// collectInputPaths joins the positional paths with the paths listed in filesFrom.
// Without any path the current directory is used.
//
// #nosec G304
func collectInputPaths(standardInput io.Reader, arguments []string, filesFrom string) ([]string, error) {
	paths := append([]string{}, arguments...)
	if filesFrom != "" {
		var listReader io.Reader = standardInput
		if filesFrom == filesFromStandardInput && isInteractive(standardInput) {
			return nil, fmt.Errorf(errorInteractiveListFormat, filesFromFlagName, filesFromStandardInput)
		}
		if filesFrom != filesFromStandardInput {
			listFile, openError := os.Open(filesFrom)
			if openError != nil {
				return nil, fmt.Errorf(errorFilesFromFormat, filesFrom, openError)
			}
			defer listFile.Close()
			listReader = listFile
		}
		scanner := bufio.NewScanner(listReader)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				paths = append(paths, line)
			}
		}
		if scanError := scanner.Err(); scanError != nil {
			return nil, fmt.Errorf(errorFilesFromFormat, filesFrom, scanError)
		}
	}
	if len(paths) == 0 {
		paths = []string{defaultPath}
	}
	return paths, nil
}

// resolveRoots converts input paths to references, keeping duplicates for the collector to report.
// Relative paths are resolved against workingDirectory.
func resolveRoots(fileSystemGateway *gateway.FileSystemGateway, workingDirectory string, paths []string) ([]types.FileReference, error) {
	roots := make([]types.FileReference, 0, len(paths))
	for _, inputPath := range paths {
		absolutePath := inputPath
		if !filepath.IsAbs(absolutePath) {
			absolutePath = filepath.Join(workingDirectory, absolutePath)
		}
		reference, referenceError := fileSystemGateway.Reference(absolutePath)
		if referenceError != nil {
			if errors.Is(referenceError, os.ErrNotExist) {
				return nil, fmt.Errorf(errorPathMissingFormat, inputPath)
			}
			return nil, referenceError
		}
		roots = append(roots, reference)
	}
	if len(roots) == 0 {
		return nil, errors.New(errorNoValidPaths)
	}
	return roots, nil
}

// isInteractive reports whether reader is a terminal, where a path list would never arrive.
func isInteractive(reader io.Reader) bool {
	file, isFile := reader.(*os.File)
	return isFile && term.IsTerminal(int(file.Fd()))
}

func commandContext(command *cobra.Command) context.Context {
	if command.Context() != nil {
		return command.Context()
	}
	return context.Background()
}

func boolValue(value bool) *bool {
	return &value
}

func intValue(value int) *int {
	return &value
}

func stringValue(value string) *string {
	return &value
}
