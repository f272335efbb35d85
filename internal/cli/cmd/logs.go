package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	followInterval   = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View ghostedit logs",
	Long: `Show the tail of the ghostedit log file.

File logging is off by default; enable it with logging.enable_file_log in the
settings or GHOSTEDIT_LOGGING_ENABLE_FILE_LOG=true.

Examples:
  ghostedit logs             # Last 50 lines
  ghostedit logs -n 200      # Last 200 lines
  ghostedit logs --follow    # Follow new lines`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

// logsClearCmd removes rotated log files.
var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear old log files",
	Long: `Remove rotated log files.

By default, removes files older than the configured max_age (default 7 days).
Use --all to remove every rotated file.`,
	Args: cobra.NoArgs,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVar(&logsFollow, "follow", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all rotated log files")
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir := app.Config.Logging.LogDir
	if logDir == "" {
		return fmt.Errorf("no log directory configured")
	}
	logPath := logging.LogFilePath(logDir)

	if _, err := os.Stat(logPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(stdout, app.Theme.Subtle.Render("No log file at "+logPath+". Set logging.enable_file_log = true to create one."))
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	if logsFollow {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Fprintln(stdout, app.Theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
		fmt.Fprintln(stdout)
		return tailLog(ctx, stdout, logPath, app.Theme)
	}

	return showLog(stdout, logPath, logsLines, app.Theme)
}

// showLog writes the last lines of the log file to w, all of it when
// lines <= 0.
func showLog(w io.Writer, logPath string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var tail []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if lines > 0 && len(tail) == lines {
			tail = append(tail[:0], tail[1:]...)
		}
		tail = append(tail, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range tail {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// tailLog prints lines appended to the log file until ctx is done. A partial
// last line is held back until its newline arrives.
func tailLog(ctx context.Context, w io.Writer, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	reader := bufio.NewReader(file)
	var partial strings.Builder
	for {
		chunk, err := reader.ReadString('\n')
		partial.WriteString(chunk)
		switch {
		case err == nil:
			fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(partial.String(), "\n"), theme))
			partial.Reset()
		case err == io.EOF:
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followInterval):
			}
		default:
			return fmt.Errorf("read log file: %w", err)
		}
	}
}

// logEntry is the subset of a JSON log line that gets displayed.
type logEntry struct {
	Level   string `json:"level"`
	Time    string `json:"time"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// consoleLevels maps the level words of console-format lines to the zerolog
// level names used by JSON lines.
var consoleLevels = map[string]string{
	"ERR": "error", "ERROR": "error",
	"WRN": "warn", "WARN": "warn",
	"INF": "info", "INFO": "info",
	"DBG": "debug", "DEBUG": "debug",
	"TRC": "trace", "TRACE": "trace",
}

var levelTags = map[string]string{
	"error": "ERR",
	"warn":  "WRN",
	"info":  "INF",
	"debug": "DBG",
	"trace": "TRC",
}

func levelStyle(level string, theme *styles.Theme) (lipgloss.Style, bool) {
	switch level {
	case "error":
		return theme.ErrorStyle, true
	case "warn":
		return theme.WarningStyle, true
	case "info":
		return theme.Highlight, true
	case "debug", "trace":
		return theme.Subtle, true
	}
	return lipgloss.Style{}, false
}

// colorizeLogLine styles one log line. JSON lines are reformatted; console
// lines are colored whole by the first level word found in them.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	level := consoleLevel(line)
	if level == "" || level == "info" {
		return line
	}
	style, _ := levelStyle(level, theme)
	return style.Render(line)
}

// consoleLevel returns the level named by the first whole-word level marker
// in line, or "".
func consoleLevel(line string) string {
	for _, field := range strings.Fields(line) {
		if level, ok := consoleLevels[strings.ToUpper(field)]; ok {
			return level
		}
	}
	return ""
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	when := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		when = t.Format(logging.ConsoleTimeFormat)
	}

	level := entry.Level
	if tag, ok := levelTags[level]; ok {
		style, _ := levelStyle(level, theme)
		level = style.Render(tag)
	}

	line := theme.Subtle.Render(when) + " " + level + " " + entry.Message
	if entry.Path != "" {
		line += " " + theme.Subtle.Render(filepath.Base(entry.Path))
	}
	return line
}

// clearLogs removes rotated files older than maxAgeDays, or all of them.
// It returns the removed names.
func clearLogs(logDir string, maxAgeDays int, all bool) ([]string, error) {
	if all {
		return logging.PruneRotated(logDir, 0, 0)
	}
	return logging.PruneRotated(logDir, time.Duration(maxAgeDays)*24*time.Hour, -1)
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// Get MaxAge from config (default 7 days)
	maxAge := 7
	if app.Config.Logging.MaxAge > 0 {
		maxAge = app.Config.Logging.MaxAge
	}

	removed, err := clearLogs(app.Config.Logging.LogDir, maxAge, logsClearAll)
	for _, name := range removed {
		fmt.Fprintf(stdout, "%s %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), name)
	}
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		fmt.Fprintln(stdout, app.Theme.Subtle.Render(fmt.Sprintf("No log files older than %d days", maxAge)))
	} else {
		fmt.Fprintf(stdout, "\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d log file(s)", len(removed))))
	}
	return nil
}
