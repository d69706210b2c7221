/*
Package framelog records per-frame data of an experiment into a
tab-separated text file.

Number of trials and frames is declared up front. Every frame is one
row of type R, fixed when the Recorder is created:

	type frame struct {
		X, Y  int
		State string `framelog:"state"`
	}

	func run() error {
		r, err := framelog.Create[frame](10, 5000, "run.txt", nil)
		if err != nil {
			return err
		}
		// finalizes, if not done explicitly, and closes the file
		defer r.Close()

		r.SetColumns(framelog.Columns[frame]()...)
		if err = r.StartNewTrial(); err != nil {
			return err
		}
		if err = r.AddFrame(frame{X: 1, Y: 2, State: "wait"}); err != nil {
			return err
		}
		return r.Close()
	}

which writes:

	trial index:
	0\t

	fr_nr\tX\tY\tstate
	0\t1\t2\twait

Rows can also be Tuple1 .. Tuple6 (framelog.Tup2(1, "a")), any type
implementing Row or a single value (Recorder[float64]).

AddLine() and AddWord() write free-form text to the output immediately,
so it appears before the table written by Finalize().

Files with .gz, .zst or .br extension are compressed, see Options.
*/
package framelog
