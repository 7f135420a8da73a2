package consensustypes

import (
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/prysmaticlabs/go-bitfield"
)

// SignedBeaconBlock is a beacon block together with its proposer signature.
// The signature itself is opaque to the fork-choice core: verifying it is a
// state-transition concern, not ours.
type SignedBeaconBlock struct {
	Block     *BeaconBlock
	Signature [96]byte
}

// BeaconBlock is the portion of a signed beacon block the fork-choice core
// reads: slot, proposer, parent linkage, and the body carrying attestations
// and (post-Deneb) blob KZG commitments.
type BeaconBlock struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    [32]byte
	StateRoot     [32]byte
	Body          *BeaconBlockBody
}

// BeaconBlockBody carries the operations relevant to fork-choice: attestations
// feed LMD-GHOST weighting (out of scope here beyond Non-goals) and blob KZG
// commitments feed the Data Availability Gate. ProposerSlashings,
// AttesterSlashings, and SyncAggregate round out the body's minimum field
// set but are opaque to this module: slashings mutate the validator
// registry and SyncAggregate feeds sync-committee rewards, both
// state-transition concerns this module never reads.
type BeaconBlockBody struct {
	ProposerSlashings    []*ProposerSlashing
	AttesterSlashings    []*AttesterSlashing
	Attestations         []*Attestation
	SyncAggregate        *SyncAggregate
	BlobKZGCommitments   [][48]byte
	ExecutionBlockHash   ethcommon.Hash
	ExecutionBlockNumber uint64
}

// ProposerSlashing is carried on the body but never read by fork-choice; the
// two conflicting signed headers it proves are a state-transition concern.
type ProposerSlashing struct {
	Header1 *SignedBeaconBlockHeader
	Header2 *SignedBeaconBlockHeader
}

// AttesterSlashing is carried on the body but never read by fork-choice; the
// two conflicting attestations it proves are a state-transition concern.
type AttesterSlashing struct {
	Attestation1 *AttestationData
	Attestation2 *AttestationData
}

// SignedBeaconBlockHeader is the minimal header shape ProposerSlashing
// references: enough to identify two conflicting proposals by the same
// validator without carrying a full block body.
type SignedBeaconBlockHeader struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
	Signature     [96]byte
}

// SyncAggregate carries the sync committee's participation bitvector and
// aggregate signature for the block. Sync-committee reward accounting is a
// state-transition concern; fork-choice never inspects it.
type SyncAggregate struct {
	SyncCommitteeBits      bitfield.Bitvector512
	SyncCommitteeSignature [96]byte
}

// Attestation is the subset of an attestation's fields relevant to the
// fork-choice core's caller contract: which validators attested and to what
// checkpoint, via a compact bitlist rather than an expanded validator index
// slice.
type Attestation struct {
	AggregationBits bitfield.Bitlist
	Data            *AttestationData
}

// AttestationData names the source/target checkpoints an attestation votes
// for, the inputs to Casper FFG justification accounting.
type AttestationData struct {
	Slot            primitives.Slot
	BeaconBlockRoot [32]byte
	Source          Checkpoint
	Target          Checkpoint
}

// BlockRoot is the canonical root of a beacon block. Computing it is an SSZ
// hash-tree-root, explicitly out of scope here; this
// type only names the shape the treehash package consumes.
type BlockRoot = [32]byte
