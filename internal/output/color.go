package output

import (
	"io"
	"regexp"

	"github.com/fatih/color"
)

var colorRx = regexp.MustCompile(`\[(BOLD|UNDERLINE|RED|GREEN|YELLOW|BLUE|MAGENTA|CYAN|WHITE|INFO|ERROR|NOTICE|/RESET)\]`)

var colorAttributes = map[string][]color.Attribute{
	"BOLD":      {color.Bold},
	"UNDERLINE": {color.Underline},
	"RED":       {color.FgRed},
	"GREEN":     {color.FgGreen},
	"YELLOW":    {color.FgYellow},
	"BLUE":      {color.FgBlue},
	"MAGENTA":   {color.FgMagenta},
	"CYAN":      {color.FgCyan},
	"WHITE":     {color.FgWhite},
	"INFO":      {color.FgBlue, color.Bold},
	"ERROR":     {color.FgRed, color.Bold},
	"NOTICE":    {color.FgYellow},
}

// writeColorized replaces `[COLORNAME]foo[/RESET]` with shell colors, or strips the tags if stripColors is set
func writeColorized(value string, writer io.Writer, stripColors bool) (int, error) {
	var attrs []color.Attribute
	written := 0
	write := func(text string) error {
		if text == "" {
			return nil
		}
		var n int
		var err error
		if stripColors || len(attrs) == 0 {
			n, err = io.WriteString(writer, text)
		} else {
			c := color.New(attrs...)
			c.EnableColor()
			n, err = c.Fprint(writer, text)
		}
		written += n
		return err
	}

	pos := 0
	for _, match := range colorRx.FindAllStringSubmatchIndex(value, -1) {
		if err := write(value[pos:match[0]]); err != nil {
			return written, err
		}
		name := value[match[2]:match[3]]
		if name == "/RESET" {
			attrs = nil
		} else {
			attrs = append(attrs, colorAttributes[name]...)
		}
		pos = match[1]
	}

	return written, write(value[pos:])
}

// StripColorCodes strips color codes from a string
func StripColorCodes(value string) string {
	return colorRx.ReplaceAllString(value, "")
}
