package db

// Modelparameter is one calibrated parameter row. Jump columns are zero for
// the pure diffusion models.
type Modelparameter struct {
	Date       string
	Ticker     string
	Model      string
	V0         float64
	Kappa      float64
	Theta      float64
	Nu         float64
	Rho        float64
	Lambda     float64
	Muj        float64
	Deltaj     float64
	Rmse       float64
	Status     string
	Iterations int32
}

type User struct {
	Prefix    string
	Token     string
	ExpiredAt string
	CreatedAt string
}
