package model

import "fmt"

// ErrIllegalTransition a status change not present in the entity's transition table
type ErrIllegalTransition struct {
	Entity string
	From   string
	To     string
}

func (e *ErrIllegalTransition) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.Entity, e.From, e.To)
}

type transitions[S ~string] map[S][]S

func (t transitions[S]) check(entity string, from, to S) error {
	for _, next := range t[from] {
		if next == to {
			return nil
		}
	}
	return &ErrIllegalTransition{Entity: entity, From: string(from), To: string(to)}
}

func (t transitions[S]) known(s S) bool {
	_, ok := t[s]
	return ok
}

type ListingStatus string

const (
	ListingScheduled ListingStatus = "SCHEDULED"
	ListingActive    ListingStatus = "ACTIVE"
	ListingSold      ListingStatus = "SOLD"
)

var listingTransitions = transitions[ListingStatus]{
	ListingScheduled: {ListingActive},
	ListingActive:    {ListingSold},
	ListingSold:      {},
}

func (s ListingStatus) Valid() bool { return listingTransitions.known(s) }

// To validates a listing status change
func (s ListingStatus) To(next ListingStatus) error {
	return listingTransitions.check("listing", s, next)
}

// Open a listing that still blocks new listings of the same NFT
func (s ListingStatus) Open() bool { return s == ListingScheduled || s == ListingActive }

type BidStatus string

const (
	BidActive   BidStatus = "ACTIVE"
	BidAccepted BidStatus = "ACCEPTED"
	BidRejected BidStatus = "REJECTED"
)

var bidTransitions = transitions[BidStatus]{
	BidActive:   {BidAccepted, BidRejected},
	BidAccepted: {},
	BidRejected: {},
}

func (s BidStatus) Valid() bool { return bidTransitions.known(s) }

func (s BidStatus) To(next BidStatus) error {
	return bidTransitions.check("bid", s, next)
}

type TradeStatus string

const (
	TradePending   TradeStatus = "PENDING"
	TradeCompleted TradeStatus = "COMPLETED"
	TradeCancelled TradeStatus = "CANCELLED"
)

var tradeTransitions = transitions[TradeStatus]{
	TradePending:   {TradeCompleted, TradeCancelled},
	TradeCompleted: {},
	TradeCancelled: {},
}

func (s TradeStatus) Valid() bool { return tradeTransitions.known(s) }

func (s TradeStatus) To(next TradeStatus) error {
	return tradeTransitions.check("trade", s, next)
}

type TradeSide string

const (
	SideOffer    TradeSide = "OFFER"    //item moves offerer -> taker
	SideReceiver TradeSide = "RECEIVER" //item moves taker -> offerer
)

type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxCompleted TransactionStatus = "COMPLETED"
	TxFailed    TransactionStatus = "FAILED"
)

var txTransitions = transitions[TransactionStatus]{
	TxPending:   {TxCompleted, TxFailed},
	TxCompleted: {},
	TxFailed:    {},
}

func (s TransactionStatus) Valid() bool { return txTransitions.known(s) }

func (s TransactionStatus) To(next TransactionStatus) error {
	return txTransitions.check("transaction", s, next)
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestRejected RequestStatus = "REJECTED"
)

var requestTransitions = transitions[RequestStatus]{
	RequestPending:  {RequestAccepted, RequestRejected},
	RequestAccepted: {},
	RequestRejected: {},
}

func (s RequestStatus) Valid() bool { return requestTransitions.known(s) }

func (s RequestStatus) To(next RequestStatus) error {
	return requestTransitions.check("friend request", s, next)
}

type WebStatus string

const (
	WebUnread WebStatus = "UNREAD"
	WebRead   WebStatus = "READ"
	WebFailed WebStatus = "FAILED"
)

var webTransitions = transitions[WebStatus]{
	WebUnread: {WebRead, WebFailed},
	WebRead:   {},
	WebFailed: {},
}

func (s WebStatus) To(next WebStatus) error {
	return webTransitions.check("notification", s, next)
}

type EmailStatus string

const (
	EmailPending EmailStatus = "PENDING"
	EmailSent    EmailStatus = "SENT"
	EmailFailed  EmailStatus = "FAILED"
)

// failed mails are retried on the next delivery run
var emailTransitions = transitions[EmailStatus]{
	EmailPending: {EmailSent, EmailFailed},
	EmailFailed:  {EmailSent, EmailFailed},
	EmailSent:    {},
}

func (s EmailStatus) To(next EmailStatus) error {
	return emailTransitions.check("notification email", s, next)
}

type NotificationType string

const (
	NotifyBestOffer       NotificationType = "BESTOFFER"
	NotifyMint            NotificationType = "MINT"
	NotifyOffer           NotificationType = "OFFER"
	NotifyOutbid          NotificationType = "OUTBID"
	NotifySuccessTransfer NotificationType = "SUCCESSTRANSFER"
	NotifyPurchase        NotificationType = "PURCHASE"
	NotifySuccess         NotificationType = "SUCCESS"
	NotifyTransfer        NotificationType = "TRANSFER"
	NotifyItemSold        NotificationType = "ITEMSOLD"
)
