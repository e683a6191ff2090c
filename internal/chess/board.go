package chess

// Coordinates is screen geometry supplied by the presentation layer.
// The engine stores it but never interprets it.
type Coordinates struct {
	X       float64
	Y       float64
	CenterX float64
	CenterY float64
}

// Piece is a single chess piece.
type Piece struct {
	// Opaque identity, unique within a board.
	ID int

	Type   PieceType
	Colour Colour

	// Number of completed relocations. Never decremented.
	StepCount int
}

// HasMoved reports whether the piece has been relocated at least once.
func (p *Piece) HasMoved() bool {
	return p.StepCount != 0
}

// Square is one cell of the board.
type Square struct {
	Address Address
	Colour  SquareColour

	// The piece standing on this square, nil when empty.
	Occupant *Piece

	// Optional presentation geometry.
	Coordinates *Coordinates

	// Presentation hint set while a piece is being dragged.
	Suggesting bool
}

// IsEmpty reports whether the square has no occupant.
func (s *Square) IsEmpty() bool {
	return s.Occupant == nil
}

// Board is the fixed BoardSize x BoardSize grid of squares.
type Board struct {
	// Squares[row][col].
	Squares [BoardSize][BoardSize]Square

	lastID int
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			colour := Dark
			if (row+col)%2 == 0 {
				colour = Light
			}
			b.Squares[row][col] = Square{
				Address: Address{Row: row, Col: col},
				Colour:  colour,
			}
		}
	}
	return b
}

// backRank is the first row seen from the White side.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// BackRank returns the back rank column order for a board whose lower
// side is played by ours. Black's view is the mirror of White's.
func BackRank(ours Colour) [BoardSize]PieceType {
	rank := backRank
	if ours == Black {
		for i, j := 0, BoardSize-1; i < j; i, j = i+1, j-1 {
			rank[i], rank[j] = rank[j], rank[i]
		}
	}
	return rank
}

// SetupInitialPosition clears the board and places the 32 starting pieces.
// Enemy pieces occupy rows 0 and 1, ours the last two rows.
func (b *Board) SetupInitialPosition(ours Colour) {
	b.Clear()
	enemy := ours.Opposite()
	first := BackRank(ours)
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col].Occupant = b.NewPiece(first[col], enemy)
		b.Squares[1][col].Occupant = b.NewPiece(Pawn, enemy)
		b.Squares[BoardSize-2][col].Occupant = b.NewPiece(Pawn, ours)
		b.Squares[BoardSize-1][col].Occupant = b.NewPiece(first[col], ours)
	}
}

// Clear removes every piece and resets presentation flags.
func (b *Board) Clear() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col].Occupant = nil
			b.Squares[row][col].Suggesting = false
		}
	}
}

// NewPiece creates an unplaced piece with a fresh identity.
func (b *Board) NewPiece(pieceType PieceType, colour Colour) *Piece {
	b.lastID++
	return &Piece{ID: b.lastID, Type: pieceType, Colour: colour}
}

// SquareAt returns the square at a.
func (b *Board) SquareAt(a Address) (*Square, error) {
	if err := CheckBounds(a); err != nil {
		return nil, err
	}
	return &b.Squares[a.Row][a.Col], nil
}

// Occupant returns the piece at a, or nil if the square is empty or off the board.
func (b *Board) Occupant(a Address) *Piece {
	if !a.InBounds() {
		return nil
	}
	return b.Squares[a.Row][a.Col].Occupant
}

// SetOccupant places p on a. A nil p empties the square.
func (b *Board) SetOccupant(a Address, p *Piece) error {
	sq, err := b.SquareAt(a)
	if err != nil {
		return err
	}
	sq.Occupant = p
	return nil
}

// SetCoordinates stores presentation geometry for a.
func (b *Board) SetCoordinates(a Address, c *Coordinates) error {
	sq, err := b.SquareAt(a)
	if err != nil {
		return err
	}
	sq.Coordinates = c
	return nil
}

// Find returns the address of the piece with the given identity.
func (b *Board) Find(id int) (Address, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col].Occupant; p != nil && p.ID == id {
				return Address{Row: row, Col: col}, true
			}
		}
	}
	return NoSquare, false
}

// Pieces returns the addresses of all pieces of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []Address {
	var addrs []Address
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col].Occupant; p != nil && p.Colour == colour {
				addrs = append(addrs, Address{Row: row, Col: col})
			}
		}
	}
	return addrs
}

// Copy creates a deep copy of the board, pieces included.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := &newBoard.Squares[row][col]
			if sq.Occupant != nil {
				p := *sq.Occupant
				sq.Occupant = &p
			}
			if sq.Coordinates != nil {
				c := *sq.Coordinates
				sq.Coordinates = &c
			}
		}
	}
	return newBoard
}

// ClearSuggestions resets every square's suggestion flag.
func (b *Board) ClearSuggestions() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col].Suggesting = false
		}
	}
}

// Suggest sets the suggestion flag on each in-bounds address.
func (b *Board) Suggest(addrs []Address) {
	for _, a := range addrs {
		if a.InBounds() {
			b.Squares[a.Row][a.Col].Suggesting = true
		}
	}
}
