package domain

// Dog собака из реестра компании
type Dog struct {
	ID            int64
	Name          string
	Breed         string
	ImageURL      *string
	OwnerID       int64
	OwnerName     string
	OwnerLastname string
}

// FindDog ищет собаку по ID
func FindDog(dogs []Dog, id int64) (Dog, bool) {
	for _, dog := range dogs {
		if dog.ID == id {
			return dog, true
		}
	}
	return Dog{}, false
}
