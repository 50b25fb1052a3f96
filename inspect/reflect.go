package inspect

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// FuncInfo is the registered description of a callable. Go reflection has no
// parameter names, defaults, or doc comments at runtime, so callers supply
// them via Reflector.Describe; unregistered callables fall back to
// synthesized names.
type FuncInfo struct {
	// Positional holds the positional parameter names in declaration order.
	Positional []string
	// NumDefaulted is the number of trailing Positional entries that carry
	// defaults.
	NumDefaulted int
	// FlagOnly holds the flag-only parameter names in declaration order.
	FlagOnly []string
	// AcceptsPositional declares whether bare positional syntax is allowed.
	// Unregistered callables default to true; a registration overrides the
	// default, so leaving this false declares flags-only calling.
	AcceptsPositional bool
	// Doc is the callable's documentation.
	Doc DocInfo
}

// BoundMethod is a method bound to its receiver, produced by Members.
// Method values created through reflection all share one code pointer, so
// methods are tracked by receiver type and name instead of as plain funcs.
type BoundMethod struct {
	receiver reflect.Value
	index    int
}

// Name returns the method's Go name.
func (m BoundMethod) Name() string {
	return m.receiver.Type().Method(m.index).Name
}

// Func returns the callable method value.
func (m BoundMethod) Func() reflect.Value {
	return m.receiver.Method(m.index)
}

type methodKey struct {
	typ  reflect.Type
	name string
}

// Reflector is the default Inspector, backed by the reflect package.
//
// Describe, DescribeMethod and DescribeType register metadata that
// reflection cannot recover. Registration must complete before rendering
// begins; the inspection methods themselves are read-only and safe for
// concurrent use.
type Reflector struct {
	funcs   map[uintptr]FuncInfo
	methods map[methodKey]FuncInfo
	types   map[reflect.Type]DocInfo
}

// NewReflector returns an empty Reflector.
func NewReflector() *Reflector {
	return &Reflector{
		funcs:   make(map[uintptr]FuncInfo),
		methods: make(map[methodKey]FuncInfo),
		types:   make(map[reflect.Type]DocInfo),
	}
}

// Describe registers the signature and documentation of fn, a plain func
// value. Methods reached through Members must be registered with
// DescribeMethod instead.
func (r *Reflector) Describe(fn any, info FuncInfo) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return
	}
	r.funcs[v.Pointer()] = info
}

// DescribeMethod registers the signature and documentation of the named
// method on receiver's type.
func (r *Reflector) DescribeMethod(receiver any, name string, info FuncInfo) {
	t := reflect.TypeOf(receiver)
	if t == nil {
		return
	}
	r.methods[methodKey{typ: t, name: name}] = info
}

// DescribeType registers the documentation of component's type, used for
// both the component's own doc and its constructor doc.
func (r *Reflector) DescribeType(component any, doc DocInfo) {
	if t := baseType(component); t != nil {
		r.types[t] = doc
	}
}

// Members enumerates named sub-components: exported struct fields in
// declaration order followed by exported methods, or sorted map keys for
// string-keyed maps. Struct fields tagged `help:"-"` and map keys starting
// with an underscore are hidden unless includeHidden is set.
func (r *Reflector) Members(component any, includeHidden bool) []Member {
	if _, ok := component.(BoundMethod); ok {
		return nil
	}

	v := reflect.ValueOf(component)
	if !v.IsValid() {
		return nil
	}

	elem := v
	for elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return nil
		}
		elem = elem.Elem()
	}

	var members []Member

	switch elem.Kind() {
	case reflect.Struct:
		t := elem.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name, hidden := fieldName(field)
			if hidden && !includeHidden {
				continue
			}
			members = append(members, Member{Name: name, Value: elem.Field(i).Interface()})
		}
	case reflect.Map:
		if elem.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, elem.Len())
		for _, k := range elem.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			if strings.HasPrefix(k, "_") && !includeHidden {
				continue
			}
			key := reflect.ValueOf(k).Convert(elem.Type().Key())
			members = append(members, Member{Name: k, Value: elem.MapIndex(key).Interface()})
		}
	}

	// Methods hang off the value as passed, so pointer receivers stay
	// reachable.
	vt := v.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		members = append(members, Member{
			Name:  memberName(vt.Method(i).Name),
			Value: BoundMethod{receiver: v, index: i},
		})
	}

	return members
}

// ArgSpec returns the registered signature of a callable, or one synthesized
// from its reflected type (arg0..argN, with a variadic tail counted as a
// defaulted parameter). Non-callable components yield a *SignatureError.
func (r *Reflector) ArgSpec(component any) (ArgSpec, error) {
	if info, ok := r.funcInfo(component); ok {
		return ArgSpec{
			Positional:   info.Positional,
			NumDefaulted: info.NumDefaulted,
			FlagOnly:     info.FlagOnly,
		}, nil
	}

	switch c := component.(type) {
	case BoundMethod:
		return synthesizeSpec(c.Func().Type()), nil
	default:
		v := reflect.ValueOf(component)
		if !v.IsValid() || v.Kind() != reflect.Func {
			return ArgSpec{}, &SignatureError{Type: reflect.TypeOf(component)}
		}
		return synthesizeSpec(v.Type()), nil
	}
}

// funcInfo looks up the registered description of a callable: plain funcs by
// code pointer, bound methods by receiver type and name.
func (r *Reflector) funcInfo(component any) (FuncInfo, bool) {
	if m, ok := component.(BoundMethod); ok {
		info, ok := r.methods[methodKey{typ: m.receiver.Type(), name: m.Name()}]
		return info, ok
	}
	v := reflect.ValueOf(component)
	if v.IsValid() && v.Kind() == reflect.Func {
		info, ok := r.funcs[v.Pointer()]
		return info, ok
	}
	return FuncInfo{}, false
}

func synthesizeSpec(t reflect.Type) ArgSpec {
	spec := ArgSpec{Positional: make([]string, t.NumIn())}
	for i := range spec.Positional {
		spec.Positional[i] = "arg" + strconv.Itoa(i)
	}
	if t.IsVariadic() {
		spec.NumDefaulted = 1
	}
	return spec
}

// Doc returns the registered documentation for a callable or for the
// component's type, or a zero DocInfo.
func (r *Reflector) Doc(component any) DocInfo {
	if info, ok := r.funcInfo(component); ok {
		return info.Doc
	}
	if r.IsCommand(component) {
		return DocInfo{}
	}
	if t := baseType(component); t != nil {
		return r.types[t]
	}
	return DocInfo{}
}

// ConstructorDoc returns the documentation registered for the component's
// type. With no separate constructor notion, type docs double as
// constructor docs: their Args entries describe the value members.
func (r *Reflector) ConstructorDoc(component any) DocInfo {
	if t := baseType(component); t != nil {
		return r.types[t]
	}
	return DocInfo{}
}

// Metadata returns the declared policy for a callable. Unregistered
// callables accept positional arguments.
func (r *Reflector) Metadata(component any) Metadata {
	if info, ok := r.funcInfo(component); ok {
		return Metadata{AcceptsPositional: info.AcceptsPositional}
	}
	return Metadata{AcceptsPositional: true}
}

// IsGroup reports whether the component is navigable but neither invocable
// nor terminal. Sequences are groups: they carry no named members, but their
// elements are reachable by index.
func (r *Reflector) IsGroup(component any) bool {
	return !r.IsCommand(component) && !r.IsValue(component)
}

// IsCommand reports whether the component is invocable.
func (r *Reflector) IsCommand(component any) bool {
	if _, ok := component.(BoundMethod); ok {
		return true
	}
	v := reflect.ValueOf(component)
	return v.IsValid() && v.Kind() == reflect.Func
}

// IsValue reports whether the component is terminal: not invocable, no
// members, not a sequence.
func (r *Reflector) IsValue(component any) bool {
	if r.IsCommand(component) {
		return false
	}
	if _, ok := r.SequenceLen(component); ok {
		return false
	}
	return len(r.Members(component, false)) == 0
}

// SequenceLen reports the length of a slice or array component.
func (r *Reflector) SequenceLen(component any) (int, bool) {
	v := reflect.ValueOf(component)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Len(), true
	default:
		return 0, false
	}
}

var _ Inspector = (*Reflector)(nil)

func baseType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// fieldName resolves a struct field's command-line name from its help tag,
// falling back to the kebab-cased Go name. A tag of "-" hides the field.
func fieldName(field reflect.StructField) (name string, hidden bool) {
	tag := field.Tag.Get("help")
	switch tag {
	case "":
		return memberName(field.Name), false
	case "-":
		return memberName(field.Name), true
	default:
		return tag, false
	}
}

// memberName converts a Go identifier to its command-line spelling:
// "SetTheme" becomes "set-theme".
func memberName(goName string) string {
	var b strings.Builder
	for i, r := range goName {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
