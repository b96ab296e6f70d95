package model

import "github.com/modemlink/caif/caif"

// ATRecord projects an AT channel address.
type ATRecord struct {
	Type  uint8 `json:"type"`
	Plain bool  `json:"plain"`
}

// UtilRecord projects a utility channel address.
type UtilRecord struct {
	Service string `json:"service"`
}

// DatagramRecord projects a datagram channel address. Exactly one of
// ConnectionID or NSAPI is set, matching the active interpretation.
type DatagramRecord struct {
	Loop         bool    `json:"loop,omitempty"`
	Kind         string  `json:"kind"`
	ConnectionID *uint32 `json:"connectionId,omitempty"`
	NSAPI        *uint8  `json:"nsapi,omitempty"`
}

// RFMRecord projects a remote-file-manager channel address.
type RFMRecord struct {
	ConnectionID uint32 `json:"connectionId"`
	Volume       string `json:"volume"`
}

// AddressRecord is the JSON projection of a decoded channel address.
// Exactly one variant field is set, selected by Protocol.
type AddressRecord struct {
	Protocol string `json:"protocol"`
	Text     string `json:"text"`

	AT       *ATRecord       `json:"at,omitempty"`
	Util     *UtilRecord     `json:"util,omitempty"`
	Datagram *DatagramRecord `json:"dgm,omitempty"`
	RFM      *RFMRecord      `json:"rfm,omitempty"`
}

// FromAddress projects addr for serialization.
func FromAddress(addr caif.Address) AddressRecord {
	rec := AddressRecord{
		Protocol: addr.Protocol().String(),
		Text:     addr.String(),
	}
	switch a := addr.(type) {
	case caif.ATAddress:
		rec.AT = &ATRecord{Type: uint8(a.Type), Plain: a.Type == caif.AtTypePlain}
	case caif.UtilAddress:
		rec.Util = &UtilRecord{Service: a.Service}
	case caif.DatagramAddress:
		d := &DatagramRecord{Loop: a.Loop, Kind: a.Kind.String()}
		switch a.Kind {
		case caif.DatagramConnectionID:
			id := a.ConnectionID
			d.ConnectionID = &id
		case caif.DatagramNSAPI:
			n := a.NSAPI
			d.NSAPI = &n
		}
		rec.Datagram = d
	case caif.RFMAddress:
		rec.RFM = &RFMRecord{ConnectionID: a.ConnectionID, Volume: a.Volume}
	}
	return rec
}

// OptionCheck is the JSON projection of a socket-option validation verdict.
type OptionCheck struct {
	Option string `json:"option"`
	Size   int    `json:"size"`
	Valid  bool   `json:"valid"`
	RuleID string `json:"ruleId,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// CheckOption validates value against opt and projects the verdict.
func CheckOption(opt caif.SocketOpt, value []byte) OptionCheck {
	chk := OptionCheck{Option: opt.String(), Size: len(value), Valid: true}
	if err := caif.ValidateOption(opt, value); err != nil {
		chk.Valid = false
		chk.RuleID = caif.RuleID(err)
		chk.Reason = err.Error()
	}
	return chk
}
