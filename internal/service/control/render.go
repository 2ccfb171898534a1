package control

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"google.golang.org/protobuf/encoding/protojson"

	domain "github.com/oshokin/alarm-countdown/internal/domain/alarm"
	pb "github.com/oshokin/alarm-countdown/internal/pb/v1"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// renderAlarms writes the alarms as an aligned table.
func renderAlarms(w io.Writer, alarms []*domain.Alarm) error {
	if len(alarms) == 0 {
		_, err := fmt.Fprintln(w, "No alarms set")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "#\tID\tSOUND\tREMAINING\tSTATUS")

	for i, a := range alarms {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, a.ID, a.Sound, domain.FormatRemaining(a.RemainingSeconds), a.Status())
	}

	return tw.Flush()
}

// renderFrame draws one watch frame.
func renderFrame(w io.Writer, alarms []*domain.Alarm, now time.Time) error {
	if _, err := fmt.Fprintf(w, "%sAlarms at %s\n\n", clearScreen, now.Format(time.TimeOnly)); err != nil {
		return err
	}

	return renderAlarms(w, alarms)
}

// renderJSON writes the wire response with protojson, keeping proto field names.
func renderJSON(w io.Writer, list *pb.ListAlarmsResponse) error {
	options := protojson.MarshalOptions{
		Multiline:       true,
		Indent:          "  ",
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}

	data, err := options.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode alarms: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
