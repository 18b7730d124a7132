package embedded

// The serial sentence format is the NMEA-style "$CMD,DATA*CS\n": a start
// byte, a command, a comma, a data field, a star, a two-hex-digit XOR
// checksum over everything between '$' and '*', and a newline.

// ParseState enumerates the frame parser's states.
type ParseState int

// Parser states, in protocol order.
const (
	ParseWaitStart ParseState = iota
	ParseReadCmd
	ParseReadData
	ParseReadCS
)

// Field size limits, matching the fixed buffers of a serial handler.
const (
	MaxCmdLen  = 15
	MaxDataLen = 63
)

// Sentence is one complete, checksum-verified command.
type Sentence struct {
	Cmd  string
	Data string
}

// FrameParser consumes a serial byte stream one byte at a time and emits
// complete sentences. Anything malformed drops the partial sentence and
// resynchronizes on the next '$'.
type FrameParser struct {
	state ParseState

	cmd      []byte
	data     []byte
	checksum byte
	csDigits int
	csValue  byte

	// Sentences and Errors count completed and discarded frames.
	Sentences uint64
	Errors    uint64
}

// NewFrameParser creates a parser waiting for a start byte.
func NewFrameParser() *FrameParser {
	return &FrameParser{}
}

// State returns the parser's current state.
func (p *FrameParser) State() ParseState { return p.state }

// Feed consumes one byte. When the byte completes a valid sentence, it is
// returned with ok true.
func (p *FrameParser) Feed(c byte) (s Sentence, ok bool) {
	// A '$' anywhere restarts the sentence: on a serial line the start
	// byte is the only thing worth trusting.
	if c == '$' {
		if p.state != ParseWaitStart {
			p.Errors++
		}

		p.restart()
		p.state = ParseReadCmd

		return Sentence{}, false
	}

	switch p.state {
	case ParseWaitStart:
		// Noise between sentences is expected, not an error.
		return Sentence{}, false

	case ParseReadCmd:
		switch {
		case c == ',':
			if len(p.cmd) == 0 {
				return p.fail()
			}
			p.state = ParseReadData
		case len(p.cmd) >= MaxCmdLen:
			return p.fail()
		default:
			p.cmd = append(p.cmd, c)
			p.checksum ^= c
		}

		if c == ',' {
			p.checksum ^= c
		}

		return Sentence{}, false

	case ParseReadData:
		switch {
		case c == '*':
			p.state = ParseReadCS
		case len(p.data) >= MaxDataLen:
			return p.fail()
		default:
			p.data = append(p.data, c)
			p.checksum ^= c
		}

		return Sentence{}, false

	case ParseReadCS:
		digit, valid := hexValue(c)

		switch {
		case c == '\n':
			if p.csDigits != 2 || p.csValue != p.checksum {
				return p.fail()
			}

			s = Sentence{Cmd: string(p.cmd), Data: string(p.data)}
			p.Sentences++
			p.restart()

			return s, true

		case !valid || p.csDigits >= 2:
			return p.fail()

		default:
			p.csValue = p.csValue<<4 | digit
			p.csDigits++
		}

		return Sentence{}, false
	}

	return Sentence{}, false
}

// FeedAll consumes a whole buffer and returns every sentence completed in
// it.
func (p *FrameParser) FeedAll(buf []byte) []Sentence {
	var out []Sentence

	for _, c := range buf {
		if s, ok := p.Feed(c); ok {
			out = append(out, s)
		}
	}

	return out
}

// Checksum computes the sentence checksum: XOR of all bytes between '$'
// and '*'.
func Checksum(cmd, data string) byte {
	var cs byte
	for i := 0; i < len(cmd); i++ {
		cs ^= cmd[i]
	}

	cs ^= ','
	for i := 0; i < len(data); i++ {
		cs ^= data[i]
	}

	return cs
}

func (p *FrameParser) fail() (Sentence, bool) {
	p.Errors++
	p.restart()

	return Sentence{}, false
}

func (p *FrameParser) restart() {
	p.state = ParseWaitStart
	p.cmd = p.cmd[:0]
	p.data = p.data[:0]
	p.checksum = 0
	p.csDigits = 0
	p.csValue = 0
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}

	return 0, false
}
