// This file is part of IPP-proj2.

package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Im0ne/IPP-proj2/vm"
)

func parse(t *testing.T, doc string) Node {
	t.Helper()
	n, err := NewXMLDocument(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}

const helloDoc = `<?xml version="1.0" encoding="UTF-8"?>
<program language="ippcode26">
	<instruction order="1" opcode="defvar">
		<arg1 type="var">GF@s</arg1>
	</instruction>
	<instruction order="2" opcode="MOVE">
		<arg1 type="var">GF@s</arg1>
		<arg2 type="string">hello</arg2>
	</instruction>
	<instruction order="3" opcode="write">
		<arg1 type="var">GF@s</arg1>
	</instruction>
</program>`

func TestLoadHello(t *testing.T) {
	prog, err := Load(parse(t, helloDoc))
	require.NoError(t, err)
	assert.Equal(t, uint32(3), prog.LastOrder)
	assert.Len(t, prog.Instructions, 3)
	assert.Equal(t, vm.OpDefVar, prog.Instructions[1].Opcode)
	assert.Equal(t, vm.OpMove, prog.Instructions[2].Opcode)
	assert.Equal(t, []vm.Arg{{Kind: vm.ArgVar, Lexeme: "GF@s"}, {Kind: vm.ArgString, Lexeme: "hello"}}, prog.Instructions[2].Args)
}

func TestLoadRejectsNonProgramRoot(t *testing.T) {
	doc := `<notprogram></notprogram>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadRejectsNonInstructionChild(t *testing.T) {
	doc := `<program><comment order="1" opcode="NOP"/></program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadRejectsMissingOrder(t *testing.T) {
	doc := `<program><instruction opcode="RETURN"/></program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadRejectsNonNumericOrder(t *testing.T) {
	doc := `<program><instruction order="abc" opcode="RETURN"/></program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadRejectsZeroOrder(t *testing.T) {
	doc := `<program><instruction order="0" opcode="RETURN"/></program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadRejectsDuplicateOrder(t *testing.T) {
	doc := `<program>
		<instruction order="1" opcode="RETURN"/>
		<instruction order="1" opcode="RETURN"/>
	</program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadRejectsArgGap(t *testing.T) {
	doc := `<program>
		<instruction order="1" opcode="ADD">
			<arg1 type="int">1</arg1>
			<arg3 type="int">2</arg3>
		</instruction>
	</program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadRejectsArg2WithoutArg1(t *testing.T) {
	doc := `<program>
		<instruction order="1" opcode="ADD">
			<arg2 type="int">1</arg2>
		</instruction>
	</program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadRejectsUnknownArgType(t *testing.T) {
	doc := `<program>
		<instruction order="1" opcode="WRITE">
			<arg1 type="float">1</arg1>
		</instruction>
	</program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadRejectsNonNumericIntLexeme(t *testing.T) {
	doc := `<program>
		<instruction order="1" opcode="WRITE">
			<arg1 type="int">abc</arg1>
		</instruction>
	</program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeStructure, err.(*vm.Error).Code)
}

func TestLoadNormalizesOpcodeCase(t *testing.T) {
	doc := `<program><instruction order="1" opcode="rEtUrN"/></program>`
	prog, err := Load(parse(t, doc))
	require.NoError(t, err)
	assert.Equal(t, vm.OpReturn, prog.Instructions[1].Opcode)
}

// Load populates Program.Orders as an ascending, deterministic list of the
// instruction orders present, regardless of document or map order, so
// vm.Disassemble (and any other future enumeration) never needs to sort a
// map's keys itself.
func TestLoadPopulatesOrdersAscending(t *testing.T) {
	doc := `<program>
		<instruction order="9" opcode="RETURN"/>
		<instruction order="2" opcode="RETURN"/>
		<instruction order="5" opcode="RETURN"/>
	</program>`
	prog, err := Load(parse(t, doc))
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 5, 9}, prog.Orders)
}

func TestLoadCollectsLabels(t *testing.T) {
	doc := `<program>
		<instruction order="1" opcode="JUMP">
			<arg1 type="label">L</arg1>
		</instruction>
		<instruction order="5" opcode="LABEL">
			<arg1 type="label">L</arg1>
		</instruction>
	</program>`
	prog, err := Load(parse(t, doc))
	require.NoError(t, err)
	assert.Equal(t, uint32(5), prog.Labels["L"])
	assert.Equal(t, uint32(5), prog.LastOrder)
}

func TestLoadRejectsDuplicateLabel(t *testing.T) {
	doc := `<program>
		<instruction order="1" opcode="LABEL"><arg1 type="label">L</arg1></instruction>
		<instruction order="2" opcode="LABEL"><arg1 type="label">L</arg1></instruction>
	</program>`
	_, err := Load(parse(t, doc))
	require.Error(t, err)
	assert.Equal(t, vm.CodeSemantic, err.(*vm.Error).Code)
}

// The loader tolerates unknown element children and unknown argN-shaped
// names outside arg1/arg2/arg3; per-opcode arity is an executor concern.
func TestLoadIgnoresUnrelatedChildren(t *testing.T) {
	doc := `<program>
		<instruction order="1" opcode="RETURN">
			<somethingelse>x</somethingelse>
		</instruction>
	</program>`
	prog, err := Load(parse(t, doc))
	require.NoError(t, err)
	assert.Len(t, prog.Instructions[1].Args, 0)
}
