// Hand-maintained easyjson codec for the dataset wire format. Kept out of
// the generator's hands so the marshaling methods live on the wire types
// directly and optional fields stay compact.
package fundchart

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Payload) UnmarshalJSON(data []byte) error {
	l := jlexer.Lexer{Data: data}
	p.UnmarshalEasyJSON(&l)
	return l.Error()
}

// MarshalJSON implements the json.Marshaler interface.
func (p *Payload) MarshalJSON() ([]byte, error) {
	var w jwriter.Writer
	p.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// UnmarshalEasyJSON implements the easyjson.Unmarshaler interface.
func (p *Payload) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "primary":
			p.Primary = decodePoints(in)
		case "benchmark":
			p.Benchmark = decodePoints(in)
		case "instruments":
			in.Delim('[')
			for !in.IsDelim(']') {
				var inst Instrument
				inst.decode(in)
				p.Instruments = append(p.Instruments, inst)
				in.WantComma()
			}
			in.Delim(']')
		case "markers":
			in.Delim('[')
			for !in.IsDelim(']') {
				var m Marker
				m.decode(in)
				p.Markers = append(p.Markers, m)
				in.WantComma()
			}
			in.Delim(']')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalEasyJSON implements the easyjson.Marshaler interface.
func (p *Payload) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"primary":`)
	encodePoints(out, p.Primary)
	if len(p.Benchmark) > 0 {
		out.RawString(`,"benchmark":`)
		encodePoints(out, p.Benchmark)
	}
	if len(p.Instruments) > 0 {
		out.RawString(`,"instruments":[`)
		for i := range p.Instruments {
			if i > 0 {
				out.RawByte(',')
			}
			p.Instruments[i].encode(out)
		}
		out.RawByte(']')
	}
	if len(p.Markers) > 0 {
		out.RawString(`,"markers":[`)
		for i := range p.Markers {
			if i > 0 {
				out.RawByte(',')
			}
			p.Markers[i].encode(out)
		}
		out.RawByte(']')
	}
	out.RawByte('}')
}

func decodePoints(in *jlexer.Lexer) []Point {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	var points []Point
	in.Delim('[')
	for !in.IsDelim(']') {
		var p Point
		p.decode(in)
		points = append(points, p)
		in.WantComma()
	}
	in.Delim(']')
	return points
}

func encodePoints(out *jwriter.Writer, points []Point) {
	out.RawByte('[')
	for i := range points {
		if i > 0 {
			out.RawByte(',')
		}
		points[i].encode(out)
	}
	out.RawByte(']')
}

func (p *Point) decode(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		switch key {
		case "t":
			if data := in.Raw(); in.Ok() {
				in.AddError(p.When.UnmarshalJSON(data))
			}
		case "v":
			p.Value = in.Float64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (p *Point) encode(out *jwriter.Writer) {
	out.RawString(`{"t":`)
	out.Raw(p.When.MarshalJSON())
	out.RawString(`,"v":`)
	out.Float64(p.Value)
	out.RawByte('}')
}

func (i *Instrument) decode(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		switch key {
		case "id":
			i.ID = in.String()
		case "label":
			i.Label = in.String()
		case "points":
			i.Points = decodePoints(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (i *Instrument) encode(out *jwriter.Writer) {
	out.RawString(`{"id":`)
	out.String(i.ID)
	out.RawString(`,"label":`)
	out.String(i.Label)
	out.RawString(`,"points":`)
	encodePoints(out, i.Points)
	out.RawByte('}')
}

func (m *Marker) decode(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		switch key {
		case "instrument":
			m.Instrument = in.String()
		case "t":
			if data := in.Raw(); in.Ok() {
				in.AddError(m.When.UnmarshalJSON(data))
			}
		case "kind":
			in.AddError(m.Kind.UnmarshalText(in.UnsafeBytes()))
		case "price":
			m.Price = in.Float64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (m *Marker) encode(out *jwriter.Writer) {
	out.RawByte('{')
	if m.Instrument != "" {
		out.RawString(`"instrument":`)
		out.String(m.Instrument)
		out.RawByte(',')
	}
	out.RawString(`"t":`)
	out.Raw(m.When.MarshalJSON())
	out.RawString(`,"kind":`)
	out.String(m.Kind.String())
	if m.Price != 0 {
		out.RawString(`,"price":`)
		out.Float64(m.Price)
	}
	out.RawByte('}')
}
