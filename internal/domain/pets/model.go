package pets

// Tipos de animal conocidos. El campo Type es texto libre; estos son los
// valores que ofrece el filtro.
const (
	TypeDog = "dog"
	TypeCat = "cat"
)

// AgeCategory es la categoría de edad precalculada de cada mascota.
// @Enum young, adult, senior
type AgeCategory string

const (
	AgeYoung  AgeCategory = "young"
	AgeAdult  AgeCategory = "adult"
	AgeSenior AgeCategory = "senior"
)

// Traits son atributos de presentación (detalle de la mascota).
type Traits struct {
	GoodWithKids bool
	HouseTrained bool
	Vaccinated   bool
}

// Shelter es el refugio que publica a la mascota.
type Shelter struct {
	Name    string
	Address string
	Phone   string
}

// Pet representa una mascota en adopción del catálogo (solo lectura).
type Pet struct {
	ID string

	Name        string
	Type        string      // dog, cat, ...
	Breed       string
	Age         string      // texto para mostrar, p.ej. "2 years"
	AgeCategory AgeCategory // young, adult, senior
	Location    string      // texto libre, p.ej. "Austin, TX"

	Image string
	Story string

	Traits  Traits
	Shelter Shelter
}
