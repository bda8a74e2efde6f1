package domain

// Deployment locates the relayer process a query is executed in.
type Deployment struct {
	Namespace string
	Relayer   string
}

// Path is one configured cross-chain channel.
type Path struct {
	Key       string
	ChainName string
	Channel   string
	Tokens    TokenThresholds
}

// Category is a group of paths served by one relayer deployment.
type Category struct {
	Name      string
	Namespace string
	Relayer   string
	// BaseChain is the chain whose native balance is checked against the native token table.
	BaseChain string
	Paths     []Path
}

// Deployment returns where the category's relayer runs.
func (c Category) Deployment() Deployment {
	return Deployment{Namespace: c.Namespace, Relayer: c.Relayer}
}
