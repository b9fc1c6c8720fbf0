package flowfield

// frontier is a FIFO ring buffer of arena indices. It is allocated once per
// graph with room for every node, which is enough because a node is queued at
// most once per flow field.
type frontier struct {
	buf        []int
	head, size int
}

func newFrontier(capacity int) frontier {
	return frontier{buf: make([]int, capacity)}
}

func (f *frontier) reset() {
	f.head, f.size = 0, 0
}

func (f *frontier) len() int { return f.size }

func (f *frontier) push(i int) {
	if f.size == len(f.buf) {
		f.grow()
	}
	f.buf[(f.head+f.size)%len(f.buf)] = i
	f.size++
}

func (f *frontier) pop() int {
	i := f.buf[f.head]
	f.head = (f.head + 1) % len(f.buf)
	f.size--
	return i
}

// grow doubles the buffer, unrolling the ring so head ends at 0.
func (f *frontier) grow() {
	n := len(f.buf) * 2
	if n == 0 {
		n = 16
	}
	buf := make([]int, n)
	for k := 0; k < f.size; k++ {
		buf[k] = f.buf[(f.head+k)%len(f.buf)]
	}
	f.buf, f.head = buf, 0
}
