package framelog

import "strconv"

// writeTable writes:
//
//	trial index:
//	<start0>\t<start1>\t...
//	<empty line>
//	fr_nr\t<headline>
//	0\t<field0>\t<field1>...
//	1\t<field0>\t<field1>...
//
// Every trial start is followed by a tab. Field values are not escaped
// so a string with a tab or newline breaks the table structure.
// Write errors are remembered by the sink
func (r *Recorder[R]) writeTable() {
	nl := r.nl
	b := r.buf[:0]
	b = append(b, "trial index:"...)
	b = append(b, nl...)
	for _, start := range r.trials.starts {
		b = strconv.AppendInt(b, int64(start), 10)
		b = append(b, '\t')
	}
	b = append(b, nl...)
	b = append(b, nl...)
	b = append(b, "fr_nr\t"...)
	b = append(b, r.headline...)
	b = append(b, nl...)
	r.sink.write(b)

	fields := r.fieldsBuf
	for i, row := range r.rows.rows {
		b = b[:0]
		b = strconv.AppendInt(b, int64(i), 10)
		fields = r.fields(fields[:0], row)
		for _, f := range fields {
			b = append(b, '\t')
			b = appendText(b, f)
		}
		b = append(b, nl...)
		if r.sink.write(b) != nil {
			break
		}
	}
	// don't keep references to row values
	clear(fields)
	r.fieldsBuf = fields[:0]
	r.buf = b
}
