package player

// Source is anything a Directory can be loaded from.
type Source interface {
	GetAllPlayers() ([]Player, error)
}

// Store defines the interface for seeding and reading the player roster.
type Store interface {
	Source
	UpsertPlayers(players []Player) error
	Count() (int, error)
}
