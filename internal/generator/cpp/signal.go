package cpp

import (
	stderrors "errors"

	"github.com/nicolasfella/qtbridge/internal/errors"
	"github.com/nicolasfella/qtbridge/internal/models"
	"github.com/nicolasfella/qtbridge/internal/naming"
	"github.com/nicolasfella/qtbridge/internal/registry"
	"github.com/nicolasfella/qtbridge/internal/templates"
)

// GenerateFreeSignal generates the standalone connect function pair for a
// signal declared on a foreign type, eg QPushButton::clicked. The connect
// function takes the owner as an explicit reference since there is no
// generated class to hang a method on
func GenerateFreeSignal(signal *models.ParsedSignal, mappings *models.TypeMappings, types registry.TypeResolver) (Fragment, error) {
	qobjectIdent := signal.QObject
	qualified := mappings.ResolveQualified(qobjectIdent)
	signalIdent := naming.SignalName(signal.Name)
	connectName := naming.FreeConnectName(qobjectIdent, signal.Name)

	parameters, err := buildParameters(signal.Parameters, mappings, types, ForeignSelf(qualified))
	if err != nil {
		return Fragment{}, annotateResolution(err, signal)
	}

	header, source, err := templates.GenerateFreeConnect(templates.FreeConnectData{
		ConnectName:   connectName,
		SelfType:      qualified,
		SignalIdent:   signalIdent,
		TypesClosure:  parameters.TypesClosure,
		TypesSignal:   parameters.TypesSignal,
		ValuesClosure: parameters.ValuesClosure,
	})
	if err != nil {
		return Fragment{}, err
	}

	return PairFragment(header, source), nil
}

// GenerateSignals generates the class body fragments for the signals of a
// generated object type. Each signal contributes a Q_SIGNAL declaration,
// unless it already exists on the base class, followed by its connect pair.
//
// A signal that fails to resolve is skipped as a whole, the remaining
// signals still generate. The returned blocks hold the fragments of the
// signals that did generate; the error carries every failure
func GenerateSignals(signals []models.ParsedSignal, qobject string, mappings *models.TypeMappings, types registry.TypeResolver) (Blocks, error) {
	var generated Blocks
	var failures *errors.MultipleErrors

	for i := range signals {
		signal := &signals[i]
		signalIdent := naming.SignalName(signal.Name)
		connectIdent := naming.ConnectName(signal.Name)

		parameters, err := buildParameters(signal.Parameters, mappings, types, MemberSelf(qobject))
		if err != nil {
			collectFailure(&failures, annotateResolution(err, signal))
			continue
		}

		// Declare the Q_SIGNAL unless the base class already provides it
		var declaration string
		if !signal.Inherit {
			declaration, err = templates.GenerateSignalDeclaration(templates.SignalDeclData{
				SignalIdent: signalIdent,
				TypesSignal: parameters.TypesSignal,
			})
			if err != nil {
				collectFailure(&failures, err)
				continue
			}
		}

		header, source, err := templates.GenerateMemberConnect(templates.MemberConnectData{
			QObject:       qobject,
			SignalIdent:   signalIdent,
			ConnectIdent:  connectIdent,
			TypesClosure:  parameters.TypesClosure,
			TypesSignal:   parameters.TypesSignal,
			ValuesClosure: parameters.ValuesClosure,
		})
		if err != nil {
			collectFailure(&failures, err)
			continue
		}

		if declaration != "" {
			generated.Append(HeaderFragment(declaration))
		}
		generated.Append(PairFragment(header, source))
	}

	if failures != nil && !failures.IsEmpty() {
		if failures.Count() == 1 {
			return generated, failures.Errors[0]
		}
		return generated, failures
	}

	return generated, nil
}

// annotateResolution records the signal on resolution failures without
// disturbing the error identity callers inspect with errors.As
func annotateResolution(err error, signal *models.ParsedSignal) error {
	var resErr *errors.TypeResolutionError
	if stderrors.As(err, &resErr) {
		resErr.WithSignal(signal.QObject, signal.Name.Source)
		if resErr.Location().IsEmpty() && signal.File != "" {
			resErr.WithLocation(errors.SourceLocation{File: signal.File, Line: signal.Line})
		}
	}
	return err
}

// collectFailure adds an error to the failure collection
func collectFailure(failures **errors.MultipleErrors, err error) {
	var bridgeErr errors.BridgeError
	if !stderrors.As(err, &bridgeErr) {
		bridgeErr = errors.Wrap(errors.GenerationErrorCode, err.Error(), err)
	}
	errors.AddToMultiple(failures, bridgeErr)
}
