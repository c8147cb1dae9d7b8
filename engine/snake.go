package engine

// Snake is the ordered body of the player, stored tail-first so that moving
// appends the head and drops from the front
type Snake struct {
	body     []Point
	occupied map[Point]struct{}
}

// newSnake lays out length segments from head extending opposite to dir
func newSnake(head Point, length int, dir Direction) *Snake {
	s := &Snake{
		body:     make([]Point, 0, length*2),
		occupied: make(map[Point]struct{}, length*2),
	}
	back := dir.Opposite()
	tail := head
	for i := 1; i < length; i++ {
		tail = tail.Step(back)
	}
	for p, i := tail, 0; i < length; i++ {
		s.push(p)
		p = p.Step(dir)
	}
	return s
}

// Head returns the leading segment
func (s *Snake) Head() Point {
	return s.body[len(s.body)-1]
}

// Tail returns the trailing segment
func (s *Snake) Tail() Point {
	return s.body[0]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Contains reports whether any segment, tail included, occupies p
func (s *Snake) Contains(p Point) bool {
	_, ok := s.occupied[p]
	return ok
}

// Segments returns a head-first copy of the body
func (s *Snake) Segments() []Point {
	out := make([]Point, len(s.body))
	for i, p := range s.body {
		out[len(s.body)-1-i] = p
	}
	return out
}

func (s *Snake) push(p Point) {
	s.body = append(s.body, p)
	s.occupied[p] = struct{}{}
}

func (s *Snake) dropTail() {
	if len(s.body) == 0 {
		return
	}
	delete(s.occupied, s.body[0])
	s.body = s.body[1:]
}
