package customer

// --- Column names (the single table is keyed by Org) ---

const (
	ColumnOrg                        = "Org"
	ColumnCSEOwner                   = "CSE_Owner"
	ColumnBuildVersion               = "Build_Version"
	ColumnReason                     = "Reason"
	ColumnRemedy                     = "Remedy"
	ColumnUpsellCrossSellOpportunity = "Upsell_Cross_sell_Opportunity"
	ColumnChurnRisk                  = "Churn_Risk"
	ColumnHealth                     = "Health"
)

// attributeColumns is the fixed attribute order used for every generated
// statement.
var attributeColumns = []string{
	ColumnCSEOwner,
	ColumnBuildVersion,
	ColumnReason,
	ColumnRemedy,
	ColumnUpsellCrossSellOpportunity,
	ColumnChurnRisk,
	ColumnHealth,
}

// AttributeColumns returns the non-key column names in statement order.
func AttributeColumns() []string {
	out := make([]string, len(attributeColumns))
	copy(out, attributeColumns)
	return out
}

// --- Record Domain Model ---

// Fields holds the optional attributes of a Record. A nil pointer means the
// attribute is absent; a pointer to "" is an explicit empty value.
type Fields struct {
	CSEOwner                   *string
	BuildVersion               *string
	Reason                     *string
	Remedy                     *string
	UpsellCrossSellOpportunity *string
	ChurnRisk                  *string
	Health                     *string
}

// Record is one row of the customer table.
type Record struct {
	Org string
	Fields
}

// Column is a single column assignment.
type Column struct {
	Name  string
	Value string
}

func (f *Fields) refs() []**string {
	return []**string{
		&f.CSEOwner,
		&f.BuildVersion,
		&f.Reason,
		&f.Remedy,
		&f.UpsellCrossSellOpportunity,
		&f.ChurnRisk,
		&f.Health,
	}
}

// Effective returns the present attributes as column assignments, in
// AttributeColumns order.
func (f Fields) Effective() []Column {
	var cols []Column
	for i, ref := range f.refs() {
		if *ref != nil {
			cols = append(cols, Column{Name: attributeColumns[i], Value: **ref})
		}
	}
	return cols
}

// Get returns the value for column, or nil when absent or unknown.
func (f Fields) Get(column string) *string {
	for i, ref := range f.refs() {
		if attributeColumns[i] == column {
			return *ref
		}
	}
	return nil
}

// Set assigns value to column. Unknown columns are ignored and reported
// with false.
func (f *Fields) Set(column string, value *string) bool {
	for i, ref := range f.refs() {
		if attributeColumns[i] == column {
			*ref = value
			return true
		}
	}
	return false
}

// Merge returns f with every attribute present in other overwritten.
func (f Fields) Merge(other Fields) Fields {
	for _, c := range other.Effective() {
		v := c.Value
		f.Set(c.Name, &v)
	}
	return f
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}

// --- UseCase Inputs ---

type ApplyInput struct {
	Org    string
	Fields Fields
}

// --- UseCase Outputs ---

type ApplyOutput struct {
	// Created is true when the Org did not exist and a row was inserted.
	Created bool
}

type ListOrgsOutput struct {
	Orgs []string
}

// DetailOutput carries the looked-up Record. Found is false when no row
// matches; that is a normal outcome and comes with a nil error.
type DetailOutput struct {
	Record Record
	Found  bool
}
