package api

// Client-side mirrors of the server's request and response types.

type PlayerConfig struct {
	Type      int    `json:"type"` // 1=human, 2=computer
	Algorithm string `json:"algorithm,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
}

type CreateGameRequest struct {
	X    PlayerConfig `json:"x"`
	O    PlayerConfig `json:"o"`
	Grid string       `json:"grid,omitempty"`
}

type MoveRequest struct {
	Move int `json:"move"`
}

type UndoRequest struct {
	Count int `json:"count,omitempty"`
}

type AnalyzeRequest struct {
	Grid string `json:"grid,omitempty"`
}

type PlayerInfo struct {
	Type      int    `json:"type"`
	Algorithm string `json:"algorithm,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
}

type PlayersInfo struct {
	X PlayerInfo `json:"x"`
	O PlayerInfo `json:"o"`
}

type MoveInfo struct {
	Move      int    `json:"move"`
	Player    string `json:"player"`
	Value     int    `json:"value,omitempty"`
	Nodes     int    `json:"nodes,omitempty"`
	ElapsedNS int64  `json:"elapsedNs,omitempty"`
}

type GameResponse struct {
	GameID   string      `json:"gameId"`
	Grid     string      `json:"grid"`
	Turn     string      `json:"turn"`
	State    string      `json:"state"`
	Moves    []int       `json:"moves"`
	Players  PlayersInfo `json:"players"`
	LastMove *MoveInfo   `json:"lastMove,omitempty"`
}

type BoardResponse struct {
	Grid  string `json:"grid"`
	Board string `json:"board"`
}

type LegalMovesResponse struct {
	Grid  string `json:"grid"`
	Moves []int  `json:"moves"`
}

type AnalysisRunInfo struct {
	Grid       string `json:"grid"`
	SideToMove string `json:"sideToMove"`
	Algorithm  string `json:"algorithm"`
	Heuristic  string `json:"heuristic"`
	BestMove   int    `json:"bestMove"`
	Value      int    `json:"value"`
	Nodes      int    `json:"nodes"`
	ElapsedNS  int64  `json:"elapsedNs"`
}

type AnalysisResponse struct {
	Runs   []AnalysisRunInfo `json:"runs"`
	Report string            `json:"report"`
}

type AnalysisHistoryResponse struct {
	Runs []AnalysisRunInfo `json:"runs"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage,omitempty"`
	Time    int64  `json:"time"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
